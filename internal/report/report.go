// Package report turns engine results into what the graphsearch CLI prints:
// a localized text table, or JSON / YAML documents for other programs.
package report

import (
	"errors"
	"math"
	"strings"

	"github.com/katalvlaran/graphsearch/bnb"
	"github.com/katalvlaran/graphsearch/core"
	"github.com/katalvlaran/graphsearch/dfs"
	"github.com/katalvlaran/graphsearch/hc"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("report: unknown output format")

// Format selects a renderer.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a flag value into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", ErrUnknownFormat
	}
}

// Report is the algorithm-independent envelope of one search.
// Steps holds one of []DFSStep, []BNBStep or []HCStep.
type Report struct {
	Algorithm string   `json:"algorithm" yaml:"algorithm"`
	Source    string   `json:"source,omitempty" yaml:"source,omitempty"`
	Start     string   `json:"start" yaml:"start"`
	Goal      string   `json:"goal" yaml:"goal"`
	Found     bool     `json:"found" yaml:"found"`
	BestCost  *float64 `json:"best_cost,omitempty" yaml:"best_cost,omitempty"`
	Path      []string `json:"path" yaml:"path"`
	Steps     any      `json:"steps" yaml:"steps"`
}

// DFSStep mirrors dfs.Step.
type DFSStep struct {
	Step    int      `json:"step" yaml:"step"`
	Current string   `json:"current" yaml:"current"`
	Stack   []string `json:"stack" yaml:"stack"`
	Visited []string `json:"visited" yaml:"visited"`
}

// BNBStep mirrors bnb.Step with edges and children pre-rendered as
// "B(3)" and "B[g=1,f=3]". Bound is nil while no solution is known.
type BNBStep struct {
	Step        int      `json:"step" yaml:"step"`
	Node        string   `json:"node" yaml:"node"`
	G           float64  `json:"g" yaml:"g"`
	ReachedGoal bool     `json:"reached_goal" yaml:"reached_goal"`
	Bound       *float64 `json:"bound" yaml:"bound"`
	Neighbors   []string `json:"neighbors" yaml:"neighbors"`
	Children    []string `json:"children" yaml:"children"`
	Open        []string `json:"open" yaml:"open"`
}

// HCStep mirrors hc.Step.
type HCStep struct {
	Step      int      `json:"step" yaml:"step"`
	Current   string   `json:"current" yaml:"current"`
	H         float64  `json:"h" yaml:"h"`
	Neighbors []string `json:"neighbors" yaml:"neighbors"`
	Chosen    string   `json:"chosen,omitempty" yaml:"chosen,omitempty"`
	Note      string   `json:"note,omitempty" yaml:"note,omitempty"`
}

// FromDFS builds a report from a DFS result.
func FromDFS(res *dfs.Result, start, goal string) *Report {
	steps := make([]DFSStep, len(res.Steps))
	for i, s := range res.Steps {
		steps[i] = DFSStep{Step: s.Step, Current: s.Current, Stack: s.Stack, Visited: s.Visited}
	}

	return &Report{
		Algorithm: "dfs",
		Start:     start,
		Goal:      goal,
		Found:     res.Found,
		Path:      nonNil(res.Path),
		Steps:     steps,
	}
}

// FromBNB builds a report from a Branch-and-Bound result.
func FromBNB(res *bnb.Result, start, goal string) *Report {
	steps := make([]BNBStep, len(res.Steps))
	for i, s := range res.Steps {
		nbs := make([]string, len(s.Neighbors))
		for j, e := range s.Neighbors {
			nbs[j] = e.String()
		}
		children := make([]string, len(s.Children))
		for j, c := range s.Children {
			children[j] = c.String()
		}
		steps[i] = BNBStep{
			Step:        i + 1,
			Node:        s.Node,
			G:           s.G,
			ReachedGoal: s.ReachedGoal,
			Bound:       finite(s.Bound),
			Neighbors:   nbs,
			Children:    children,
			Open:        nonNil(s.Open),
		}
	}

	return &Report{
		Algorithm: "bnb",
		Start:     start,
		Goal:      goal,
		Found:     res.Found,
		BestCost:  res.BestCost,
		Path:      nonNil(res.Path),
		Steps:     steps,
	}
}

// FromHC builds a report from a Hill-Climbing result.
func FromHC(res *hc.Result, start, goal string) *Report {
	steps := make([]HCStep, len(res.Steps))
	for i, s := range res.Steps {
		steps[i] = HCStep{
			Step:      i + 1,
			Current:   s.Current,
			H:         s.H,
			Neighbors: nonNil(s.Neighbors),
			Chosen:    s.Chosen,
			Note:      string(s.Note),
		}
	}

	return &Report{
		Algorithm: "hc",
		Start:     start,
		Goal:      goal,
		Found:     res.Found,
		Path:      nonNil(res.Path),
		Steps:     steps,
	}
}

// finite returns nil for ±Inf so the value encodes as null.
func finite(x float64) *float64 {
	if math.IsInf(x, 0) {
		return nil
	}

	return &x
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

// number renders x the way the grammar writes it, ∞ for +Inf.
func number(x float64) string {
	if math.IsInf(x, 1) {
		return "∞"
	}

	return core.FormatNumber(x)
}
