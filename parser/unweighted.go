package parser

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/graphsearch/core"
)

// Problem is the result of parsing the unweighted (DFS) dialect.
// Start and Goal are empty when the input did not specify them; they are not
// checked against the graph until Validate is called.
type Problem struct {
	Graph *core.Graph
	Start string
	Goal  string
}

// ParseUnweighted parses the unweighted dialect. It never fails: lines that
// match no rule are ignored and the result is checked separately by Validate.
//
// Grammar, one statement per non-blank line, first matching rule wins:
//
//	Start: A; Goal: G            (also "Trạng thái đầu: A; Trạng thái kết thúc: G")
//	Goal: G; Start: A            (either order)
//	Start: A                     (also "Trạng thái đầu: A")
//	Goal: G                      (also "Trạng thái kết thúc: G")
//	A: B, C, D                   (adjacency, empty list allowed)
//
// The Vietnamese markers may be preceded by anything on their line, so
// "- Trạng thái đầu: A" still sets the start. A line that mentions
// "Trạng thái" is never read as adjacency.
//
// Every node that is only mentioned as a neighbor is registered afterwards
// with an empty neighbor list, in first-mention order.
func ParseUnweighted(text string) Problem {
	g := core.NewGraph()
	var start, goal string

	for _, line := range splitLines(text) {
		if line == "" {
			continue
		}

		if r, m, ok := match(unweightedRules, line); ok {
			switch r.kind {
			case kindStartGoal:
				start, goal = strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
			case kindGoalStart:
				goal, start = strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
			case kindStart:
				start = strings.TrimSpace(m[1])
			case kindGoal:
				goal = strings.TrimSpace(m[1])
			}
			continue
		}

		node, rest, ok := adjacency(line)
		if !ok {
			continue
		}
		// SetNeighbors cannot fail here: node is non-empty and splitList drops empty tokens.
		_ = g.SetNeighbors(node, splitList(rest))
	}

	// Auto-register neighbor-only nodes.
	for _, id := range g.Nodes() {
		for _, nb := range g.Neighbors(id) {
			_ = g.AddNode(nb)
		}
	}

	return Problem{Graph: g, Start: start, Goal: goal}
}

// adjacency splits an adjacency line into its node and neighbor list.
func adjacency(line string) (node, rest string, ok bool) {
	if viMarkerRe.MatchString(line) {
		return "", "", false
	}
	node, rest, ok = strings.Cut(line, ":")
	node = strings.TrimSpace(node)
	if !ok || node == "" {
		return "", "", false
	}

	return node, rest, true
}

// ValidationResult is the soft outcome of Validate: a validity flag plus a
// human-readable message. Error is empty when Valid is true.
type ValidationResult struct {
	Valid bool
	Error string
}

// Err returns nil for a valid result and an error carrying the message
// otherwise, for callers that prefer a single error channel.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}

	return fmt.Errorf("parser: %s", r.Error)
}

// Validate checks an unweighted problem before search, short-circuiting at
// the first failure in this order: graph non-empty, start given, goal given,
// start is a node, goal is a node.
func Validate(g *core.Graph, start, goal string) ValidationResult {
	switch {
	case g.Len() == 0:
		return ValidationResult{Error: "Graph is empty or invalid"}
	case start == "":
		return ValidationResult{Error: "Start node not specified"}
	case goal == "":
		return ValidationResult{Error: "Goal node not specified"}
	case !g.HasNode(start):
		return ValidationResult{Error: fmt.Sprintf("Start node '%s' not found in graph", start)}
	case !g.HasNode(goal):
		return ValidationResult{Error: fmt.Sprintf("Goal node '%s' not found in graph", goal)}
	}

	return ValidationResult{Valid: true}
}

// Validate is shorthand for Validate(p.Graph, p.Start, p.Goal).
func (p Problem) Validate() ValidationResult {
	return Validate(p.Graph, p.Start, p.Goal)
}

// splitLines normalizes text to NFC, drops a leading byte-order mark and
// returns the trimmed lines.
func splitLines(text string) []string {
	text = strings.TrimPrefix(norm.NFC.String(text), "\uFEFF")
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	return lines
}

// splitList splits a comma-separated list, trimming tokens and dropping
// empty ones.
func splitList(s string) []string {
	out := []string{}
	for _, tok := range strings.Split(s, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}

	return out
}
