package parser

import (
	"strings"

	"github.com/katalvlaran/graphsearch/core"
)

// FormatUnweighted renders p in canonical unweighted grammar: one adjacency
// line per node in registration order, then the Start and Goal lines (each
// omitted when empty). ParseUnweighted(FormatUnweighted(p)) yields an equal
// graph and the same start and goal.
func FormatUnweighted(p Problem) string {
	var b strings.Builder
	for _, id := range p.Graph.Nodes() {
		b.WriteString(id)
		b.WriteString(":")
		if nbs := p.Graph.Neighbors(id); len(nbs) > 0 {
			b.WriteString(" ")
			b.WriteString(strings.Join(nbs, ", "))
		}
		b.WriteString("\n")
	}
	writeEndpoints(&b, p.Start, p.Goal)

	return b.String()
}

// FormatHeuristic renders p in canonical heuristic grammar. Weighted graphs
// use NAME(WEIGHT) tokens, unweighted graphs bare IDs. Numbers are written in
// shortest exact decimal form, so reparsing yields an equal graph.
func FormatHeuristic(p HeuristicProblem) string {
	var b strings.Builder
	weighted := p.Graph.Weighted()
	for _, id := range p.Graph.Nodes() {
		edges := p.Graph.Edges(id)
		tokens := make([]string, len(edges))
		for i, e := range edges {
			if weighted {
				tokens[i] = e.String()
			} else {
				tokens[i] = e.To
			}
		}
		h, _ := p.Graph.Heuristic(id)

		b.WriteString(id)
		b.WriteString(":")
		if len(tokens) > 0 {
			b.WriteString(" ")
			b.WriteString(strings.Join(tokens, ", "))
		}
		b.WriteString(" | h=")
		b.WriteString(core.FormatNumber(h))
		b.WriteString("\n")
	}
	writeEndpoints(&b, p.Start, p.Goal)

	return b.String()
}

func writeEndpoints(b *strings.Builder, start, goal string) {
	if start != "" {
		b.WriteString("Start: ")
		b.WriteString(start)
		b.WriteString("\n")
	}
	if goal != "" {
		b.WriteString("Goal: ")
		b.WriteString(goal)
		b.WriteString("\n")
	}
}
