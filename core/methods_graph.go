// File: methods_graph.go
// Role: Node lifecycle & queries for the unweighted Graph.
//
// Determinism:
//   - Nodes() returns IDs in first-registration order.
//   - Neighbors() returns IDs in declaration order.
//
// Ownership:
//   - Every accessor returns a fresh slice; callers may mutate results freely.
package core

// AddNode registers id with an empty neighbor list if it is missing.
// Adding an existing node is a no-op and keeps its neighbors.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, ok := g.adj[id]; ok {
		return nil
	}
	g.order = append(g.order, id)
	g.adj[id] = []string{}

	return nil
}

// SetNeighbors declares id (registering it if needed) and replaces its
// neighbor list with a copy of neighbors. Neighbor IDs are not registered as
// nodes here; see the parser for auto-registration.
//
// Errors:
//   - ErrEmptyNodeID: if id or any neighbor ID is "".
//
// Complexity: O(len(neighbors)).
func (g *Graph) SetNeighbors(id string, neighbors []string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	for _, nb := range neighbors {
		if nb == "" {
			return ErrEmptyNodeID
		}
	}
	if _, ok := g.adj[id]; !ok {
		g.order = append(g.order, id)
	}
	g.adj[id] = append(make([]string, 0, len(neighbors)), neighbors...)

	return nil
}

// HasNode reports whether id is a key of the graph. A nil graph has no nodes.
func (g *Graph) HasNode(id string) bool {
	if g == nil {
		return false
	}
	_, ok := g.adj[id]

	return ok
}

// Neighbors returns a copy of the ordered neighbor list of id,
// or nil if id is not a node.
func (g *Graph) Neighbors(id string) []string {
	if g == nil {
		return nil
	}
	nbs, ok := g.adj[id]
	if !ok {
		return nil
	}

	return append(make([]string, 0, len(nbs)), nbs...)
}

// Nodes returns all node IDs in first-registration order.
func (g *Graph) Nodes() []string {
	if g == nil {
		return nil
	}

	return append(make([]string, 0, len(g.order)), g.order...)
}

// Len returns the number of nodes. A nil graph has length 0.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}

	return len(g.order)
}

// Clone returns a deep copy of the graph.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := NewGraph()
	for _, id := range g.order {
		c.order = append(c.order, id)
		c.adj[id] = append([]string{}, g.adj[id]...)
	}

	return c
}

// Equal reports whether g and other have the same nodes in the same order
// and identical neighbor lists.
func (g *Graph) Equal(other *Graph) bool {
	if g.Len() != other.Len() {
		return false
	}
	if g.Len() == 0 {
		return true
	}
	for i, id := range g.order {
		if other.order[i] != id {
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
