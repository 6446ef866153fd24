// File: methods_heuristic.go
// Role: Declaration & queries for HeuristicGraph.
//
// Determinism:
//   - Nodes() returns IDs in declaration order.
//   - Edges()/NeighborIDs() return edges in declaration order.
package core

import "math"

// Declare sets the outgoing edges and the heuristic of id in one step,
// registering id on first declaration. A later declaration of the same id
// replaces both its edges and its heuristic but keeps its original position.
//
// Edge targets are not required to be declared yet; whether every target is
// eventually declared is a parser-level validation.
//
// Errors:
//   - ErrEmptyNodeID:  if id or any edge target is "".
//   - ErrBadWeight:    if the graph is unweighted and an edge has Weight != 0.
//   - ErrBadHeuristic: if h is NaN or ±Inf.
//
// Complexity: O(len(edges)).
func (g *HeuristicGraph) Declare(id string, edges []Edge, h float64) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return ErrBadHeuristic
	}
	for _, e := range edges {
		if e.To == "" {
			return ErrEmptyNodeID
		}
		if !g.weighted && e.Weight != 0 {
			return ErrBadWeight
		}
	}

	if _, ok := g.h[id]; !ok {
		g.order = append(g.order, id)
	}
	g.adj[id] = append(make([]Edge, 0, len(edges)), edges...)
	g.h[id] = h

	return nil
}

// Weighted reports whether the graph was constructed WithWeighted.
func (g *HeuristicGraph) Weighted() bool {
	return g != nil && g.weighted
}

// HasNode reports whether id has been declared.
func (g *HeuristicGraph) HasNode(id string) bool {
	if g == nil {
		return false
	}
	_, ok := g.h[id]

	return ok
}

// Heuristic returns h(id) and whether id has been declared.
func (g *HeuristicGraph) Heuristic(id string) (float64, bool) {
	if g == nil {
		return 0, false
	}
	v, ok := g.h[id]

	return v, ok
}

// Edges returns a copy of the ordered outgoing edges of id,
// or nil if id has not been declared.
func (g *HeuristicGraph) Edges(id string) []Edge {
	if g == nil {
		return nil
	}
	es, ok := g.adj[id]
	if !ok {
		return nil
	}

	return append(make([]Edge, 0, len(es)), es...)
}

// NeighborIDs returns the ordered edge targets of id without weights.
func (g *HeuristicGraph) NeighborIDs(id string) []string {
	if g == nil {
		return nil
	}
	es, ok := g.adj[id]
	if !ok {
		return nil
	}
	ids := make([]string, len(es))
	for i, e := range es {
		ids[i] = e.To
	}

	return ids
}

// Nodes returns all declared node IDs in declaration order.
func (g *HeuristicGraph) Nodes() []string {
	if g == nil {
		return nil
	}

	return append(make([]string, 0, len(g.order)), g.order...)
}

// Len returns the number of declared nodes.
func (g *HeuristicGraph) Len() int {
	if g == nil {
		return 0
	}

	return len(g.order)
}

// Clone returns a deep copy of the graph, flags included.
// Complexity: O(V + E).
func (g *HeuristicGraph) Clone() *HeuristicGraph {
	c := &HeuristicGraph{
		weighted: g.weighted,
		order:    append([]string{}, g.order...),
		adj:      make(map[string][]Edge, len(g.adj)),
		h:        make(map[string]float64, len(g.h)),
	}
	for id, es := range g.adj {
		c.adj[id] = append([]Edge{}, es...)
	}
	for id, v := range g.h {
		c.h[id] = v
	}

	return c
}

// Equal reports whether g and other have the same weighted flag, the same
// declaration order, identical edge lists and identical heuristics.
func (g *HeuristicGraph) Equal(other *HeuristicGraph) bool {
	if g.Len() != other.Len() || g.Weighted() != other.Weighted() {
		return false
	}
	for i := 0; i < g.Len(); i++ {
		id := g.order[i]
		if other.order[i] != id || g.h[id] != other.h[id] {
			return false
		}
		a, b := g.adj[id], other.adj[id]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}

	return true
}
