package hc

import (
	"context"
	"errors"
)

// Sentinel errors for Search.
var (
	ErrGraphNil        = errors.New("hc: graph is nil")
	ErrOptionViolation = errors.New("hc: invalid option supplied")
	ErrStepLimit       = errors.New("hc: step limit exceeded")
)

// Note tags a step with what the climber concluded there.
type Note string

const (
	NoteNone     Note = ""
	NoteGoal     Note = "goal"
	NoteDeadEnd  Note = "dead_end"
	NoteProgress Note = "progress"
	NoteStuck    Note = "stuck"
)

// Option configures optional behavior of Search.
type Option func(*Options)

// Options holds configurable parameters for a Hill-Climbing run.
type Options struct {
	Ctx      context.Context
	OnStep   func(Step) error
	MaxSteps int // 0 means unlimited

	err error
}

// DefaultOptions returns Options with a background context, no hook and
// no step limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context checked before each move. A nil ctx is ignored.
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

// Step is one snapshot of the climb.
type Step struct {
	Current   string
	H         float64
	Neighbors []string // declared neighbors of Current
	Chosen    string   // empty when no move was considered
	Note      Note
}

// Result captures the outcome of a climb.
type Result struct {
	Found bool
	Path  []string // nodes visited so far, start first
	Steps []Step
}
