package parser

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/graphsearch/core"
)

// Dialect selects a grammar.
type Dialect string

// Supported dialects.
const (
	// DialectDFS is the unweighted adjacency grammar.
	DialectDFS Dialect = "dfs"

	// DialectBNB is the heuristic grammar with NAME(WEIGHT) neighbor tokens.
	DialectBNB Dialect = "bnb"

	// DialectHC is the heuristic grammar with bare neighbor IDs.
	DialectHC Dialect = "hc"
)

// ParseDialect maps "dfs", "bnb" or "hc" (any case) to a Dialect.
func ParseDialect(s string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(strings.TrimSpace(s))); d {
	case DialectDFS, DialectBNB, DialectHC:
		return d, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, s)
}

// HeuristicProblem is the result of parsing the heuristic dialect. It is only
// returned when every validation passed, so Start and Goal are declared and
// every edge target has a heuristic.
type HeuristicProblem struct {
	Graph *core.HeuristicGraph
	Start string
	Goal  string
}

// ParseBNB is ParseHeuristic(text, DialectBNB).
func ParseBNB(text string) (HeuristicProblem, error) {
	return ParseHeuristic(text, DialectBNB)
}

// ParseHC is ParseHeuristic(text, DialectHC).
func ParseHC(text string) (HeuristicProblem, error) {
	return ParseHeuristic(text, DialectHC)
}

// ParseHeuristic parses the heuristic dialect shared by Branch-and-Bound and
// Hill-Climbing. Blank lines and lines starting with '#' are skipped.
//
// Grammar, one statement per line, first matching rule wins:
//
//	A: B(1), C(4) | h=7      node declaration, BNB sub-form
//	A: B, C | h=7            node declaration, HC sub-form
//	L: | h=0                 leaf
//	START=A | Start: A | Trạng thái đầu: A | Bắt đầu: A
//	GOAL=G  | Goal: G  | Trạng thái kết thúc: G | Kết thúc: G
//
// Keywords are case-insensitive. A repeated declaration replaces the earlier
// one. Failures are returned as *ParseError; see the Code constants for the
// order in which checks run.
func ParseHeuristic(text string, d Dialect) (HeuristicProblem, error) {
	var opts []core.GraphOption
	switch d {
	case DialectBNB:
		opts = append(opts, core.WithWeighted())
	case DialectHC:
	default:
		return HeuristicProblem{}, fmt.Errorf("%w: %q", ErrUnsupportedDialect, d)
	}

	g := core.NewHeuristicGraph(opts...)
	var start, goal string

	// 1. Collect declarations.
	for _, line := range splitLines(text) {
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		r, m, ok := match(heuristicRules, line)
		if !ok {
			continue
		}

		switch r.kind {
		case kindStart:
			start = m[1]
		case kindGoal:
			goal = m[1]
		case kindNode:
			edges, err := parseEdges(d, m[2], line)
			if err != nil {
				return HeuristicProblem{}, err
			}
			h, err := strconv.ParseFloat(m[3], 64)
			if err != nil {
				return HeuristicProblem{}, fmt.Errorf("parser: heuristic %q: %w", m[3], err)
			}
			if err = g.Declare(m[1], edges, h); err != nil {
				return HeuristicProblem{}, fmt.Errorf("parser: declare %q: %w", m[1], err)
			}
		}
	}

	// 2. Validate.
	if err := validateHeuristic(d, g, start, goal); err != nil {
		return HeuristicProblem{}, err
	}

	return HeuristicProblem{Graph: g, Start: start, Goal: goal}, nil
}

// parseEdges splits a neighbor list into edges. BNB tokens must be
// NAME(WEIGHT); HC tokens are taken verbatim as neighbor IDs.
func parseEdges(d Dialect, list, line string) ([]core.Edge, error) {
	tokens := splitList(list)
	edges := make([]core.Edge, 0, len(tokens))
	for _, tok := range tokens {
		if d == DialectHC {
			edges = append(edges, core.Edge{To: tok})
			continue
		}
		em := edgeTokenRe.FindStringSubmatch(tok)
		if em == nil {
			return nil, newParseError(CodeBadEdgeToken, CtxToken, tok, CtxLine, line)
		}
		w, err := strconv.ParseFloat(em[2], 64)
		if err != nil {
			return nil, newParseError(CodeBadEdgeToken, CtxToken, tok, CtxLine, line)
		}
		edges = append(edges, core.Edge{To: em[1], Weight: w})
	}

	return edges, nil
}

// validateHeuristic runs the post-parse checks in their fixed order.
func validateHeuristic(d Dialect, g *core.HeuristicGraph, start, goal string) error {
	if start == "" {
		return newParseError(CodeMissingStart)
	}
	if goal == "" {
		return newParseError(CodeMissingGoal)
	}
	if d == DialectHC && g.Len() == 0 {
		return newParseError(CodeNoNodes)
	}
	if !g.HasNode(start) {
		if d == DialectHC {
			return newParseError(CodeStartNotInGraph, CtxStart, start)
		}
		return newParseError(CodeStartUndeclared, CtxStart, start)
	}
	if _, ok := g.Heuristic(start); !ok {
		return newParseError(CodeMissingHNode, CtxNode, start)
	}
	if _, ok := g.Heuristic(goal); !ok {
		return newParseError(CodeMissingHNode, CtxNode, goal)
	}

	for _, u := range g.Nodes() {
		for _, v := range g.NeighborIDs(u) {
			if g.HasNode(v) {
				continue
			}
			if d == DialectHC {
				return newParseError(CodeNeighborUndeclared, CtxFrom, u, CtxNode, v)
			}
			return newParseError(CodeMissingHNode, CtxNode, v)
		}
	}

	return nil
}

// Classify reports the label of the rule that line matches in dialect d,
// e.g. "node", "start/vi" or "goal/assign". For the DFS dialect, lines that
// match no marker rule but contain ':' are labeled "adjacency". Blank lines,
// comments and unmatched lines return ok == false.
func Classify(d Dialect, line string) (label string, ok bool) {
	line = strings.TrimSpace(norm.NFC.String(line))
	if line == "" {
		return "", false
	}
	switch d {
	case DialectDFS:
		if r, _, ok := match(unweightedRules, line); ok {
			return r.label, true
		}
		if _, _, ok := adjacency(line); ok {
			return "adjacency", true
		}
	case DialectBNB, DialectHC:
		if strings.HasPrefix(line, "#") {
			return "", false
		}
		if r, _, ok := match(heuristicRules, line); ok {
			return r.label, true
		}
	}

	return "", false
}
