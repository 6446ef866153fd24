// Package core provides the graph models consumed by the search engines.
//
// Two models cover the two input dialects:
//
//   - Graph: an unweighted adjacency list for depth-first search.
//     node → ordered neighbor IDs.
//   - HeuristicGraph: an adjacency list of Edges (optionally weighted) plus a
//     heuristic h(n) per node, for Branch-and-Bound and Hill-Climbing.
//     node → ordered []Edge, node → h.
//
// Why ordered?
//
//	Traversal order is part of the observable result. DFS pushes neighbors in
//	reverse declaration order and Hill-Climbing/Branch-and-Bound break ties by
//	node ID, so the models never reorder what the input declared.
//
// Configuration Options (GraphOption, HeuristicGraph only):
//
//	– WithWeighted()
//	    Permits non-zero edge weights; otherwise Declare(..., Weight≠0) → ErrBadWeight.
//
// Core Methods:
//
//	// Graph
//	AddNode(id string) error                         // O(1)
//	SetNeighbors(id string, nbs []string) error      // O(deg)
//	HasNode(id string) bool                          // O(1)
//	Neighbors(id string) []string                    // O(deg), copy
//	Nodes() []string                                 // O(V), copy
//
//	// HeuristicGraph
//	Declare(id string, edges []Edge, h float64) error // O(deg)
//	Heuristic(id string) (float64, bool)              // O(1)
//	Edges(id string) []Edge                           // O(deg), copy
//	NeighborIDs(id string) []string                   // O(deg)
//
// Both models expose Clone() and Equal() for tests and for callers that need
// to keep an input untouched.
//
// Concurrency:
//
//	The models are not synchronized. They are built once by a parser and then
//	only read by the engines, so sharing a built graph between goroutines that
//	only read it is safe.
package core
