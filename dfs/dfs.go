// Package dfs implements an explicit-stack depth-first search on core.Graph
// that records a replayable step trace.
//
// Key features:
//   - Search(g, start, goal, opts...): LIFO open list seeded with start,
//     neighbors pushed in reverse declaration order so they are expanded
//     left to right.
//   - Parent links set on a node's first push only; the path is rebuilt from
//     them once goal is visited.
//   - Hooks: OnStep with error abort; cancellation via context.Context;
//     optional step limit.
//
// Complexity:
//
//   - Time:   O(V + E) pushes and pops, plus O(V) per step to copy the
//     stack and visited list into the trace.
//   - Memory: O(V + E) for the stack, O(V²) worst case for the trace.
//
// Errors:
//
//   - ErrGraphNil          if g is nil.
//   - ErrOptionViolation   if an option was invalid.
//   - ErrStepLimit         if WithMaxSteps was exceeded.
//   - context.Canceled     if ctx is done.
//   - any error returned by OnStep.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphsearch/core"
)

// dfsWalker encapsulates state during a search.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	goal  string      // node that ends the search
	opts  Options     // search options
	res   *Result     // result collector

	stack   []string          // open list; top is the last element
	visited map[string]bool   // membership for order
	order   []string          // visited nodes in visiting order
	parent  map[string]string // first-push parent links
	pops    int               // loop iterations so far
}

// Search runs depth-first search from start until goal is visited or the
// stack is exhausted. Not finding goal is a normal outcome (Found == false),
// not an error. The graph is assumed validated (see parser.Validate); a start
// that is not a node is simply visited as a node without neighbors.
func Search(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
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

	// 3. Initialize state with capacity hints
	n := g.Len()
	w := &dfsWalker{
		graph:   g,
		goal:    goal,
		opts:    o,
		res:     &Result{Steps: make([]Step, 0, n), Path: []string{}},
		stack:   []string{start},
		visited: make(map[string]bool, n),
		order:   make([]string, 0, n),
		parent:  make(map[string]string, n),
	}

	// 4. Run the loop, then rebuild the path
	if err := w.run(); err != nil {
		return w.res, err
	}
	if w.res.Found {
		w.res.Path = w.buildPath()
	}

	return w.res, nil
}

// run pops until the goal is visited or the stack is empty.
func (w *dfsWalker) run() error {
	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// 2. Pop; discard nodes visited since they were pushed
		w.pops++
		current := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.visited[current] {
			continue
		}

		// 3. Visit and record
		w.visited[current] = true
		w.order = append(w.order, current)
		if err := w.record(current); err != nil {
			return err
		}

		// 4. Goal test happens before expansion
		if current == w.goal {
			w.res.Found = true
			return nil
		}

		// 5. Push unvisited neighbors right to left
		nbs := w.graph.Neighbors(current)
		for i := len(nbs) - 1; i >= 0; i-- {
			nb := nbs[i]
			if w.visited[nb] {
				continue
			}
			w.stack = append(w.stack, nb)
			if _, seen := w.parent[nb]; !seen {
				w.parent[nb] = current
			}
		}
	}

	return nil
}

// record appends a snapshot of the current state and runs the hook.
func (w *dfsWalker) record(current string) error {
	if w.opts.MaxSteps > 0 && len(w.res.Steps) >= w.opts.MaxSteps {
		return ErrStepLimit
	}

	step := Step{
		Step:    w.pops,
		Current: current,
		Stack:   append(make([]string, 0, len(w.stack)), w.stack...),
		Visited: append(make([]string, 0, len(w.order)), w.order...),
	}
	w.res.Steps = append(w.res.Steps, step)

	if w.opts.OnStep != nil {
		if err := w.opts.OnStep(step); err != nil {
			return fmt.Errorf("dfs: OnStep hook for %q: %w", current, err)
		}
	}

	return nil
}

// buildPath walks parent links back from goal and returns start→goal.
func (w *dfsWalker) buildPath() []string {
	var rev []string
	for node, ok := w.goal, true; ok; node, ok = w.parent[node] {
		rev = append(rev, node)
	}

	path := make([]string, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}

	return path
}
