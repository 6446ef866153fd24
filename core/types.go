// Package core defines the in-memory graph models shared by the parsers and
// the search engines: an ordered unweighted Graph and a HeuristicGraph whose
// nodes carry an estimate h(n) and whose edges optionally carry weights.
//
// This file declares Graph, HeuristicGraph, Edge, GraphOption, sentinel
// errors, and the constructors.
//
// Errors:
//
//	ErrEmptyNodeID   - node ID is the empty string.
//	ErrNodeNotFound  - requested node does not exist.
//	ErrBadWeight     - non-zero weight provided to an unweighted HeuristicGraph.
//	ErrBadHeuristic  - heuristic value is NaN or infinite.
package core

import (
	"errors"
	"strconv"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrBadHeuristic indicates a heuristic value that is NaN or ±Inf.
	ErrBadHeuristic = errors.New("core: heuristic must be a finite number")
)

// Graph is an unweighted adjacency list that remembers insertion order.
//
// Neighbor order is meaningful: it is the order in which traversal
// algorithms consider successors. Node order is the order in which nodes were
// first registered and is what Nodes() reports.
type Graph struct {
	order []string            // node IDs in first-registration order
	adj   map[string][]string // node ID → ordered neighbor IDs
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{adj: make(map[string][]string)}
}

// Edge is a directed, weighted connection to a neighbor.
// Weight is zero for edges of an unweighted HeuristicGraph.
type Edge struct {
	// To is the destination node ID.
	To string

	// Weight is the traversal cost of the edge.
	Weight float64
}

// String renders the edge as NAME(WEIGHT), the token form used by the
// weighted grammar, e.g. "B(3)" or "C(0.5)".
func (e Edge) String() string {
	return e.To + "(" + FormatNumber(e.Weight) + ")"
}

// GraphOption configures a HeuristicGraph before creation.
type GraphOption func(g *HeuristicGraph)

// WithWeighted allows non-zero edge weights in the HeuristicGraph.
func WithWeighted() GraphOption {
	return func(g *HeuristicGraph) { g.weighted = true }
}

// HeuristicGraph is an ordered adjacency list of Edges plus a per-node
// heuristic h(n). Every node is declared together with its heuristic, so a
// node is present if and only if it has an h value.
type HeuristicGraph struct {
	weighted bool // allow non-zero weights

	order []string           // node IDs in declaration order
	adj   map[string][]Edge  // node ID → ordered outgoing edges
	h     map[string]float64 // node ID → heuristic estimate
}

// NewHeuristicGraph creates an empty HeuristicGraph with the given options.
// By default the graph is unweighted: every edge must have Weight == 0.
// Complexity: O(len(opts))
func NewHeuristicGraph(opts ...GraphOption) *HeuristicGraph {
	g := &HeuristicGraph{
		adj: make(map[string][]Edge),
		h:   make(map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// FormatNumber renders a weight or heuristic the way the grammar writes it:
// shortest decimal representation, never in exponent form.
func FormatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
