// Package bnb implements the list-based Branch-and-Bound search used for
// weighted graphs with a per-node heuristic h(n).
//
// The open list L is not a priority queue. Each iteration removes the head
// of L; a goal record may improve the incumbent and the search goes on,
// any other record is expanded into children with f = g + w + h(v), those
// with f < bound survive, are sorted by (f, node ID) and placed in front of
// the rest of L. The expansion order is therefore depth biased and the
// result is only optimal for an admissible heuristic, which is not checked.
//
// Complexity:
//   - Worst case exponential in the graph size; a zero-cost cycle that never
//     reaches goal keeps L non-empty forever. Use WithMaxSteps or a context
//     deadline to bound such inputs.
//   - Memory: O(|L| · depth) for the pending paths plus the trace.
package bnb

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/graphsearch/core"
)

// bnbEngine holds all search data for one run.
type bnbEngine struct {
	graph *core.HeuristicGraph
	goal  string
	opts  Options

	open []Candidate // L; head is open[0]

	// Current best incumbent
	bestCost float64
	bestPath []string

	steps []Step
}

// Search runs Branch-and-Bound from start to goal. An exhausted open list
// without any goal removal is a normal outcome (Found == false).
//
// The graph is assumed validated by parser.ParseBNB; a neighbor without a
// heuristic value contributes h = 0.
func Search(g *core.HeuristicGraph, start, goal string, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3. Seed the open list and the incumbent
	e := &bnbEngine{
		graph:    g,
		goal:     goal,
		opts:     o,
		open:     []Candidate{{Node: start, Path: []string{start}}},
		bestCost: math.Inf(1),
		bestPath: []string{},
	}

	// 4. Search; a partial result accompanies any error
	err := e.run()

	return e.result(), err
}

// run drains the open list.
func (e *bnbEngine) run() error {
	for len(e.open) > 0 {
		select {
		case <-e.opts.Ctx.Done():
			return e.opts.Ctx.Err()
		default:
		}

		cur := e.open[0]
		e.open = e.open[1:]

		if cur.Node == e.goal {
			if cur.G < e.bestCost {
				e.bestCost = cur.G
				e.bestPath = cur.Path
			}
			if err := e.record(Step{
				Node:        cur.Node,
				G:           cur.G,
				ReachedGoal: true,
				Bound:       e.bestCost,
				Neighbors:   []core.Edge{},
				Children:    []Candidate{},
				Open:        e.openIDs(),
			}); err != nil {
				return err
			}
			continue
		}

		edges := e.graph.Edges(cur.Node)
		if edges == nil {
			edges = []core.Edge{}
		}
		children := e.expand(cur, edges)

		next := make([]Candidate, 0, len(children)+len(e.open))
		next = append(next, children...)
		e.open = append(next, e.open...)

		if err := e.record(Step{
			Node:      cur.Node,
			G:         cur.G,
			Bound:     e.bestCost,
			Neighbors: edges,
			Children:  children,
			Open:      e.openIDs(),
		}); err != nil {
			return err
		}
	}

	return nil
}

// expand builds the surviving children of cur in prepend order.
func (e *bnbEngine) expand(cur Candidate, edges []core.Edge) []Candidate {
	children := make([]Candidate, 0, len(edges))
	for _, edge := range edges {
		h, _ := e.graph.Heuristic(edge.To)
		g2 := cur.G + edge.Weight
		f2 := g2 + h
		if f2 >= e.bestCost {
			continue
		}
		path := make([]string, len(cur.Path), len(cur.Path)+1)
		copy(path, cur.Path)
		children = append(children, Candidate{Node: edge.To, G: g2, F: f2, Path: append(path, edge.To)})
	}

	// Deterministic order: f ascending, node ID as tie-break.
	sort.SliceStable(children, func(i, j int) bool {
		ci, cj := children[i], children[j]
		if ci.F == cj.F {
			return ci.Node < cj.Node
		}
		return ci.F < cj.F
	})

	return children
}

// openIDs snapshots the node IDs of the open list.
func (e *bnbEngine) openIDs() []string {
	ids := make([]string, len(e.open))
	for i, c := range e.open {
		ids[i] = c.Node
	}

	return ids
}

// record appends step and runs the hook.
func (e *bnbEngine) record(step Step) error {
	if e.opts.MaxSteps > 0 && len(e.steps) >= e.opts.MaxSteps {
		return ErrStepLimit
	}
	step.Children = cloneCandidates(step.Children)
	e.steps = append(e.steps, step)

	if e.opts.OnStep != nil {
		if err := e.opts.OnStep(step); err != nil {
			return fmt.Errorf("bnb: OnStep hook for %q: %w", step.Node, err)
		}
	}

	return nil
}

// result assembles the caller-owned Result.
func (e *bnbEngine) result() *Result {
	res := &Result{
		Path:  append([]string{}, e.bestPath...),
		Steps: e.steps,
	}
	if res.Steps == nil {
		res.Steps = []Step{}
	}
	if !math.IsInf(e.bestCost, 1) {
		cost := e.bestCost
		res.Found = true
		res.BestCost = &cost
	}

	return res
}

// cloneCandidates deep-copies cs so the trace never aliases the open list.
func cloneCandidates(cs []Candidate) []Candidate {
	out := make([]Candidate, len(cs))
	for i, c := range cs {
		c.Path = append([]string(nil), c.Path...)
		out[i] = c
	}

	return out
}
