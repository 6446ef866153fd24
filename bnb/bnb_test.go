package bnb_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsearch/bnb"
	"github.com/katalvlaran/graphsearch/core"
	"github.com/katalvlaran/graphsearch/parser"
)

// mustParse parses a BNB document or fails the test.
func mustParse(t testing.TB, text string) parser.HeuristicProblem {
	t.Helper()
	p, err := parser.ParseBNB(text)
	require.NoError(t, err)

	return p
}

func nodes(steps []bnb.Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Node
	}

	return out
}

func TestSearch_NilGraph(t *testing.T) {
	res, err := bnb.Search(nil, "A", "B")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bnb.ErrGraphNil)
}

func TestSearch_Triangle(t *testing.T) {
	p := mustParse(t, "A: B(1), C(4) | h=0\nB: C(1) | h=0\nC: | h=0\nSTART=A\nGOAL=C")

	res, err := bnb.Search(p.Graph, p.Start, p.Goal)
	require.NoError(t, err)

	assert.True(t, res.Found)
	require.NotNil(t, res.BestCost)
	assert.Equal(t, 2.0, *res.BestCost)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	require.Len(t, res.Steps, 4)

	inf := math.Inf(1)
	assert.Equal(t, bnb.Step{
		Node:      "A",
		G:         0,
		Bound:     inf,
		Neighbors: []core.Edge{{To: "B", Weight: 1}, {To: "C", Weight: 4}},
		Children: []bnb.Candidate{
			{Node: "B", G: 1, F: 1, Path: []string{"A", "B"}},
			{Node: "C", G: 4, F: 4, Path: []string{"A", "C"}},
		},
		Open: []string{"B", "C"},
	}, res.Steps[0])

	assert.Equal(t, []string{"C", "C"}, res.Steps[1].Open)

	// The first goal removal sets the bound and the search continues.
	assert.True(t, res.Steps[2].ReachedGoal)
	assert.Equal(t, 2.0, res.Steps[2].Bound)
	assert.Equal(t, []string{"C"}, res.Steps[2].Open)
	assert.Empty(t, res.Steps[2].Neighbors)
	assert.Empty(t, res.Steps[2].Children)

	// The dearer goal record is still traced but does not replace the best.
	assert.True(t, res.Steps[3].ReachedGoal)
	assert.Equal(t, 4.0, res.Steps[3].G)
	assert.Equal(t, 2.0, res.Steps[3].Bound)
	assert.Empty(t, res.Steps[3].Open)
}

func TestSearch_StartIsGoal(t *testing.T) {
	p := mustParse(t, "A: B(1) | h=0\nB: | h=0\nSTART=A\nGOAL=A")

	res, err := bnb.Search(p.Graph, p.Start, p.Goal)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 0.0, *res.BestCost)
	assert.Equal(t, []string{"A"}, res.Path)
	require.Len(t, res.Steps, 1)
	assert.True(t, res.Steps[0].ReachedGoal)
}

func TestSearch_GoalUnreachable(t *testing.T) {
	p := mustParse(t, "A: B(1) | h=0\nB: | h=0\nZ: | h=0\nSTART=A\nGOAL=Z")

	res, err := bnb.Search(p.Graph, p.Start, p.Goal)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.BestCost)
	assert.NotNil(t, res.Path)
	assert.Empty(t, res.Path)
	assert.Equal(t, []string{"A", "B"}, nodes(res.Steps))
	for _, s := range res.Steps {
		assert.True(t, math.IsInf(s.Bound, 1))
	}
}

func TestSearch_TieBreakByNodeID(t *testing.T) {
	p := mustParse(t, "A: C(1), B(1), D(0) | h=0\nB: | h=1\nC: | h=1\nD: | h=2\nZ: | h=0\nSTART=A\nGOAL=Z")

	res, err := bnb.Search(p.Graph, p.Start, p.Goal)
	require.NoError(t, err)
	require.NotEmpty(t, res.Steps)
	assert.Equal(t, []string{"B", "C", "D"}, res.Steps[0].Open, "equal f=2 sorted by ID")
}

func TestSearch_PrunesAgainstBound(t *testing.T) {
	p := mustParse(t, `
A: G(1), B(1) | h=0
B: G(1) | h=5
G: | h=0
START=A
GOAL=G`)

	res, err := bnb.Search(p.Graph, p.Start, p.Goal)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "G", "B"}, nodes(res.Steps))

	last := res.Steps[2]
	assert.Equal(t, 1.0, last.Bound)
	assert.Equal(t, []core.Edge{{To: "G", Weight: 1}}, last.Neighbors)
	assert.Empty(t, last.Children, "G via B has f=2 >= bound 1")
	assert.Empty(t, last.Open)
	assert.Equal(t, 1.0, *res.BestCost)
}

func TestSearch_DepthBiasedOrder(t *testing.T) {
	p := mustParse(t, `
A: G(2), B(1) | h=0
B: C(5) | h=0
C: G(1) | h=0
G: | h=0
START=A
GOAL=G`)

	res, err := bnb.Search(p.Graph, p.Start, p.Goal)
	require.NoError(t, err)
	// C's children go in front of the older G entry although their f is larger.
	assert.Equal(t, []string{"A", "B", "C", "G", "G"}, nodes(res.Steps))
	assert.Equal(t, []string{"G", "G"}, res.Steps[2].Open)
	assert.Equal(t, 2.0, *res.BestCost)
	assert.Equal(t, []string{"A", "G"}, res.Path)
}

func TestSearch_HeuristicAdmissibility(t *testing.T) {
	const layout = `
A: G(5), Y(1) | h=0
Y: Z(1) | h=%s
Z: G(1) | h=%s
G: | h=0
START=A
GOAL=G`

	t.Run("admissible finds the optimum", func(t *testing.T) {
		p := mustParse(t, fmt.Sprintf(layout, "0", "0"))
		res, err := bnb.Search(p.Graph, p.Start, p.Goal)
		require.NoError(t, err)
		assert.Equal(t, 3.0, *res.BestCost)
		assert.Equal(t, []string{"A", "Y", "Z", "G"}, res.Path)
	})

	t.Run("overestimating heuristic is trusted", func(t *testing.T) {
		p := mustParse(t, fmt.Sprintf(layout, "10", "10"))
		res, err := bnb.Search(p.Graph, p.Start, p.Goal)
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.Equal(t, 5.0, *res.BestCost, "Z is pruned once the direct edge sets the bound")
		assert.Equal(t, []string{"A", "G"}, res.Path)
	})
}

// shortestDAG returns the minimum start→goal cost over a DAG whose nodes
// are numbered in topological order, and the exact cost-to-goal of each node.
func shortestDAG(n int, adj [][]core.Edge, index map[string]int) (float64, []float64) {
	toGoal := make([]float64, n)
	for i := range toGoal {
		toGoal[i] = math.Inf(1)
	}
	toGoal[n-1] = 0
	for u := n - 2; u >= 0; u-- {
		for _, e := range adj[u] {
			if c := e.Weight + toGoal[index[e.To]]; c < toGoal[u] {
				toGoal[u] = c
			}
		}
	}

	return toGoal[0], toGoal
}

func TestSearch_MatchesBruteForceOnRandomDAGs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n = 7

	for trial := 0; trial < 50; trial++ {
		adj := make([][]core.Edge, n)
		index := make(map[string]int, n)
		for i := 0; i < n; i++ {
			index[fmt.Sprintf("N%d", i)] = i
		}
		for u := 0; u < n-1; u++ {
			for v := u + 1; v < n; v++ {
				if rng.Intn(3) == 0 {
					adj[u] = append(adj[u], core.Edge{To: fmt.Sprintf("N%d", v), Weight: float64(1 + rng.Intn(9))})
				}
			}
		}
		want, toGoal := shortestDAG(n, adj, index)

		for _, exact := range []bool{false, true} {
			g := core.NewHeuristicGraph(core.WithWeighted())
			for u := 0; u < n; u++ {
				h := 0.0
				if exact && !math.IsInf(toGoal[u], 1) {
					h = toGoal[u]
				}
				require.NoError(t, g.Declare(fmt.Sprintf("N%d", u), adj[u], h))
			}

			res, err := bnb.Search(g, "N0", fmt.Sprintf("N%d", n-1))
			require.NoError(t, err)

			if math.IsInf(want, 1) {
				assert.False(t, res.Found, "trial %d", trial)
				continue
			}
			require.True(t, res.Found, "trial %d", trial)
			assert.Equal(t, want, *res.BestCost, "trial %d exact=%v", trial, exact)

			cost := 0.0
			for i := 0; i+1 < len(res.Path); i++ {
				for _, e := range adj[index[res.Path[i]]] {
					if e.To == res.Path[i+1] {
						cost += e.Weight
						break
					}
				}
			}
			assert.Equal(t, want, cost, "path cost must match BestCost")
		}
	}
}

func TestSearch_StepsAreSnapshots(t *testing.T) {
	p := mustParse(t, "A: B(1), C(4) | h=0\nB: C(1) | h=0\nC: | h=0\nSTART=A\nGOAL=C")
	res, err := bnb.Search(p.Graph, p.Start, p.Goal)
	require.NoError(t, err)

	res.Steps[0].Children[0].Path[0] = "mutated"
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
}

func TestSearch_MaxSteps(t *testing.T) {
	// A zero-cost cycle that never reaches the goal keeps the open list alive.
	p := mustParse(t, "A: B(0) | h=0\nB: A(0) | h=0\nZ: | h=0\nSTART=A\nGOAL=Z")

	res, err := bnb.Search(p.Graph, p.Start, p.Goal, bnb.WithMaxSteps(25))
	assert.ErrorIs(t, err, bnb.ErrStepLimit)
	require.NotNil(t, res)
	assert.Len(t, res.Steps, 25)
	assert.False(t, res.Found)

	_, err = bnb.Search(p.Graph, p.Start, p.Goal, bnb.WithMaxSteps(-2))
	assert.ErrorIs(t, err, bnb.ErrOptionViolation)
}

func TestSearch_OnStepAndContext(t *testing.T) {
	p := mustParse(t, "A: B(1), C(4) | h=0\nB: C(1) | h=0\nC: | h=0\nSTART=A\nGOAL=C")

	boom := errors.New("boom")
	calls := 0
	res, err := bnb.Search(p.Graph, p.Start, p.Goal, bnb.WithOnStep(func(s bnb.Step) error {
		calls++
		if s.ReachedGoal {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
	assert.Len(t, res.Steps, 3)
	assert.True(t, res.Found, "partial result keeps the incumbent")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err = bnb.Search(p.Graph, p.Start, p.Goal, bnb.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, res.Steps)
}

func TestCandidate_String(t *testing.T) {
	c := bnb.Candidate{Node: "B", G: 1, F: 2.5}
	assert.Equal(t, "B[g=1,f=2.5]", c.String())
}
