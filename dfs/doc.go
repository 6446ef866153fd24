// Package dfs implements a traced depth-first search over the unweighted
// core.Graph produced by parser.ParseUnweighted.
//
// What:
//
//   - Search walks from start using an explicit LIFO stack. Neighbors are
//     pushed in reverse declaration order, so the first declared neighbor is
//     expanded first. A node popped after it was already visited is dropped
//     without a trace entry.
//   - Every visit appends a Step holding the pop counter, the visited node,
//     a copy of the stack (bottom first) and the visiting order so far.
//   - The goal test runs on visit, before expansion. Path is rebuilt from
//     the parent recorded when each node was first pushed, so it is a real
//     path through the graph but not necessarily the one the stack followed
//     last and not necessarily the shortest.
//
// Key Types:
//
//   - Step, Result: trace entries and outcome.
//   - Option / Options: WithContext, WithOnStep, WithMaxSteps.
//
// Complexity:
//
//   - Search: Time O(V+E) for the walk plus O(V) per recorded step for the
//     snapshots; Memory O(V²) worst case for the trace.
//
// Errors:
//
//   - ErrGraphNil         graph pointer is nil
//   - ErrOptionViolation  negative step limit
//   - ErrStepLimit        more steps than WithMaxSteps allows (partial result returned)
//   - context.Canceled    search canceled via context
//   - hook errors         propagated from OnStep, wrapped
//
// An unreachable goal is not an error: Result.Found is false and Path is empty.
package dfs
