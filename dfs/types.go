// Package dfs defines types and options for the stack-based depth-first
// search engine, including cancellation, a per-step hook, and a step limit.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Search.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied
	// (e.g. a negative step limit).
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrStepLimit is returned, together with the partial result, when the
	// search records more steps than WithMaxSteps allows.
	ErrStepLimit = errors.New("dfs: step limit exceeded")
)

// Option configures optional behavior of Search.
// Use with Search(g, start, goal, opts...).
type Option func(*Options)

// Options holds configurable parameters for a DFS run.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked once per loop iteration.
	Ctx context.Context

	// OnStep, if non-nil, is invoked right after a step is appended to the
	// trace. Returning an error aborts the search with that error.
	OnStep func(Step) error

	// MaxSteps, if positive, bounds the number of recorded steps.
	// Zero means no limit.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Background context
//   - no step hook
//   - no step limit
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnStep:   nil,
		MaxSteps: 0,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep returns an Option that installs fn as a step hook.
func WithOnStep(fn func(Step) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithMaxSteps returns an Option that limits the trace to n steps.
// A negative n is recorded and surfaced as ErrOptionViolation.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxSteps = n
	}
}

// Step is one snapshot of the search, recorded each time a node is popped
// and visited. Popping an already visited node records nothing.
type Step struct {
	// Step is the loop iteration that produced this snapshot, counting every
	// pop including discarded ones, so numbers increase but may skip.
	Step int

	// Current is the node just visited.
	Current string

	// Stack is the open list after popping Current, stored bottom first:
	// the next node to be popped is the last element.
	Stack []string

	// Visited lists visited nodes in visiting order, Current included.
	Visited []string
}

// Result captures the outcome of a search.
type Result struct {
	// Steps is the chronological trace.
	Steps []Step

	// Path runs from start to goal inclusive; empty when not Found.
	Path []string

	// Found reports whether goal was visited.
	Found bool
}
