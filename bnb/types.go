package bnb

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/graphsearch/core"
)

var (
	// ErrGraphNil is returned when a nil *core.HeuristicGraph is passed to Search.
	ErrGraphNil = errors.New("bnb: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bnb: invalid option supplied")

	// ErrStepLimit is returned, together with the partial result, when the
	// search records more steps than WithMaxSteps allows.
	ErrStepLimit = errors.New("bnb: step limit exceeded")
)

// Option configures optional behavior of Search.
type Option func(*Options)

// Options holds configurable parameters for a Branch-and-Bound run.
type Options struct {
	// Ctx allows cancellation or timeouts; checked once per expansion.
	Ctx context.Context

	// OnStep, if non-nil, is invoked right after a step is recorded.
	// Returning an error aborts the search with that error.
	OnStep func(Step) error

	// MaxSteps, if positive, bounds the number of recorded steps.
	MaxSteps int

	err error
}

// DefaultOptions returns Options with a background context, no hook and
// no step limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context checked between expansions.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep installs a hook called after each recorded step.
func WithOnStep(fn func(Step) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithMaxSteps limits the trace to n steps; 0 disables the limit and a
// negative n yields ErrOptionViolation.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxSteps = n
	}
}

// Candidate is a partial path record held on the open list.
type Candidate struct {
	Node string   // last node of Path
	G    float64  // cost of Path
	F    float64  // G + h(Node)
	Path []string // start..Node
}

// String renders the candidate as "B[g=1,f=3]".
func (c Candidate) String() string {
	return fmt.Sprintf("%s[g=%s,f=%s]", c.Node, core.FormatNumber(c.G), core.FormatNumber(c.F))
}

// Step records one removal from the head of the open list.
//
// For a goal removal ReachedGoal is set, Neighbors and Children are empty
// and Open lists what remains pending. Otherwise Neighbors are the raw
// outgoing edges of Node, Children the survivors of pruning in the order
// they were prepended, and Open the list after prepending.
type Step struct {
	Node        string
	G           float64
	ReachedGoal bool

	// Bound is the best solution cost known when the step was recorded,
	// +Inf until a goal has been reached.
	Bound float64

	Neighbors []core.Edge
	Children  []Candidate
	Open      []string
}

// Result captures the outcome of a search.
type Result struct {
	// Found reports whether any start→goal path was reached.
	Found bool

	// BestCost is the cost of Path; nil when not Found.
	BestCost *float64

	// Path is the cheapest start→goal path seen; empty when not Found.
	Path []string

	// Steps is the chronological trace.
	Steps []Step
}
