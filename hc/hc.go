// Package hc implements steepest-descent Hill-Climbing over a
// core.HeuristicGraph: from the current node, move to the neighbor with the
// smallest h(n), ties broken by node ID, as long as that strictly improves
// on h(current).
//
// The climb ends with:
//   - Found == true when goal becomes current (final step noted NoteGoal);
//   - Found == false at a node without neighbors (NoteDeadEnd);
//   - Found == false when the best neighbor is no better (NoteStuck).
//
// Every step records the node, its h, its neighbors and the choice made.
// Since each move strictly lowers h, a finite graph cannot cycle; the
// climber keeps no visited set and relies on that.
package hc

import (
	"fmt"

	"github.com/katalvlaran/graphsearch/core"
)

// climber holds per-run state.
type climber struct {
	graph *core.HeuristicGraph
	opts  Options
	res   *Result
}

// Search climbs from start towards goal. Local optima and dead ends are
// normal outcomes reported through Result.Found, not errors.
//
// The graph is assumed validated by parser.ParseHC; undeclared nodes have
// no neighbors and h = 0.
func Search(g *core.HeuristicGraph, start, goal string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	c := &climber{
		graph: g,
		opts:  o,
		res:   &Result{Path: []string{start}, Steps: []Step{}},
	}
	if err := c.climb(start, goal); err != nil {
		return c.res, err
	}

	return c.res, nil
}

func (c *climber) climb(start, goal string) error {
	current := start

	// 1. Initial snapshot
	note := NoteNone
	if current == goal {
		note = NoteGoal
	}
	if err := c.record(current, "", note); err != nil {
		return err
	}

	// 2. Descend
	for current != goal {
		select {
		case <-c.opts.Ctx.Done():
			return c.opts.Ctx.Err()
		default:
		}

		nbs := c.graph.NeighborIDs(current)
		if len(nbs) == 0 {
			return c.record(current, "", NoteDeadEnd)
		}

		best := nbs[0]
		for _, nb := range nbs[1:] {
			if c.h(nb) < c.h(best) || (c.h(nb) == c.h(best) && nb < best) {
				best = nb
			}
		}

		if c.h(best) >= c.h(current) {
			return c.record(current, best, NoteStuck)
		}
		if err := c.record(current, best, NoteProgress); err != nil {
			return err
		}

		current = best
		c.res.Path = append(c.res.Path, current)
	}

	// 3. Goal reached
	c.res.Found = true

	return c.record(current, "", NoteGoal)
}

// h returns the heuristic value of id, 0 when undeclared.
func (c *climber) h(id string) float64 {
	v, _ := c.graph.Heuristic(id)

	return v
}

// record appends a step for current and runs the hook.
func (c *climber) record(current, chosen string, note Note) error {
	if c.opts.MaxSteps > 0 && len(c.res.Steps) >= c.opts.MaxSteps {
		return ErrStepLimit
	}

	nbs := c.graph.NeighborIDs(current)
	if nbs == nil {
		nbs = []string{}
	}
	step := Step{
		Current:   current,
		H:         c.h(current),
		Neighbors: nbs,
		Chosen:    chosen,
		Note:      note,
	}
	c.res.Steps = append(c.res.Steps, step)

	if c.opts.OnStep != nil {
		if err := c.opts.OnStep(step); err != nil {
			return fmt.Errorf("hc: OnStep hook for %q: %w", current, err)
		}
	}

	return nil
}
