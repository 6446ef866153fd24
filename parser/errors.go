package parser

import (
	"errors"
	"sort"
	"strings"
)

// Code identifies a weighted-dialect validation failure. Codes are stable
// and meant to be mapped to localized text by the caller.
type Code string

// Weighted-dialect error codes.
const (
	// CodeMissingStart: no start-declaration line.
	CodeMissingStart Code = "MISSING_START"

	// CodeMissingGoal: no goal-declaration line.
	CodeMissingGoal Code = "MISSING_GOAL"

	// CodeNoNodes: no node-declaration line at all (HC dialect).
	CodeNoNodes Code = "NO_NODES"

	// CodeStartUndeclared: start has no node-declaration line (BNB dialect).
	// Context: "start".
	CodeStartUndeclared Code = "START_UNDECLARED"

	// CodeStartNotInGraph: start has no node-declaration line (HC dialect).
	// Context: "start".
	CodeStartNotInGraph Code = "START_NOT_IN_GRAPH"

	// CodeMissingHNode: start, goal or an edge target lacks a heuristic.
	// Context: "node".
	CodeMissingHNode Code = "MISSING_H_NODE"

	// CodeNeighborUndeclared: an edge target was never declared (HC dialect).
	// Context: "from", "node".
	CodeNeighborUndeclared Code = "NEIGHBOR_UNDECLARED"

	// CodeBadEdgeToken: a neighbor token is not NAME(WEIGHT) (BNB dialect).
	// Context: "token", "line".
	CodeBadEdgeToken Code = "BAD_EDGE_TOKEN"
)

// Context keys carried by ParseError.
const (
	CtxStart = "start"
	CtxNode  = "node"
	CtxFrom  = "from"
	CtxToken = "token"
	CtxLine  = "line"
)

// ParseError is the error raised by the weighted-dialect parser. It carries a
// stable Code plus the Context needed to explain the failure (which node,
// which token, which source line).
//
// Use errors.Is against the sentinels below to test for a code and
// errors.As to read the context:
//
//	var pe *parser.ParseError
//	if errors.As(err, &pe) && pe.Code == parser.CodeBadEdgeToken {
//	    fmt.Println(pe.Context[parser.CtxToken])
//	}
type ParseError struct {
	Code    Code
	Context map[string]string
}

// Sentinel errors, one per Code. errors.Is matches on Code alone.
var (
	ErrMissingStart       = &ParseError{Code: CodeMissingStart}
	ErrMissingGoal        = &ParseError{Code: CodeMissingGoal}
	ErrNoNodes            = &ParseError{Code: CodeNoNodes}
	ErrStartUndeclared    = &ParseError{Code: CodeStartUndeclared}
	ErrStartNotInGraph    = &ParseError{Code: CodeStartNotInGraph}
	ErrMissingHNode       = &ParseError{Code: CodeMissingHNode}
	ErrNeighborUndeclared = &ParseError{Code: CodeNeighborUndeclared}
	ErrBadEdgeToken       = &ParseError{Code: CodeBadEdgeToken}
)

// ErrUnsupportedDialect is returned when a parser is asked for a dialect it
// does not implement.
var ErrUnsupportedDialect = errors.New("parser: unsupported dialect")

func newParseError(code Code, kv ...string) *ParseError {
	ctx := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		ctx[kv[i]] = kv[i+1]
	}

	return &ParseError{Code: code, Context: ctx}
}

// Error renders the code followed by the context in key order,
// e.g. `parser: BAD_EDGE_TOKEN (line="A: B | h=1", token="B")`.
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("parser: ")
	b.WriteString(string(e.Code))
	if len(e.Context) == 0 {
		return b.String()
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteString(" (")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(quote(e.Context[k]))
	}
	b.WriteString(")")

	return b.String()
}

// Is reports whether target is a *ParseError with the same Code.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)

	return ok && t.Code == e.Code
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
