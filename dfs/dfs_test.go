package dfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsearch/core"
	"github.com/katalvlaran/graphsearch/dfs"
)

// buildGraph declares each node of adj in the given order.
func buildGraph(t testing.TB, order []string, adj map[string][]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range order {
		require.NoError(t, g.SetNeighbors(id, adj[id]))
	}

	return g
}

// buildChain creates a chain N0→N1→…→N(n-1).
func buildChain(t testing.TB, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n-1; i++ {
		require.NoError(t, g.SetNeighbors(fmt.Sprintf("N%d", i), []string{fmt.Sprintf("N%d", i+1)}))
	}
	require.NoError(t, g.AddNode(fmt.Sprintf("N%d", n-1)))

	return g
}

func currents(steps []dfs.Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Current
	}

	return out
}

func TestSearch_NilGraph(t *testing.T) {
	res, err := dfs.Search(nil, "A", "B")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestSearch_BasicTrace(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C", "D"}, map[string][]string{
		"A": {"B", "C"},
		"C": {"D"},
	})

	res, err := dfs.Search(g, "A", "D")
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, []string{"A", "C", "D"}, res.Path)
	assert.Equal(t, []dfs.Step{
		{Step: 1, Current: "A", Stack: []string{}, Visited: []string{"A"}},
		{Step: 2, Current: "B", Stack: []string{"C"}, Visited: []string{"A", "B"}},
		{Step: 3, Current: "C", Stack: []string{}, Visited: []string{"A", "B", "C"}},
		{Step: 4, Current: "D", Stack: []string{}, Visited: []string{"A", "B", "C", "D"}},
	}, res.Steps)
}

func TestSearch_StartIsGoal(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, map[string][]string{"A": {"B"}})

	res, err := dfs.Search(g, "A", "A")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"A"}, res.Path)
	require.Len(t, res.Steps, 1)
	assert.Equal(t, "A", res.Steps[0].Current)
}

func TestSearch_NotFound(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, map[string][]string{
		"A": {"B", "C"},
		"B": {"C"},
	})

	res, err := dfs.Search(g, "A", "Z")
	require.NoError(t, err, "an unreachable goal is not an error")
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
	assert.NotNil(t, res.Path)
	assert.Equal(t, []string{"A", "B", "C"}, currents(res.Steps))
	// C is pushed twice; the second pop is discarded without a step.
	assert.Equal(t, []string{"A", "B", "C"}, res.Steps[len(res.Steps)-1].Visited)
}

func TestSearch_StepNumbersCountDiscardedPops(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C", "D"}, map[string][]string{
		"A": {"B", "C", "D"},
		"B": {"C"},
	})

	res, err := dfs.Search(g, "A", "D")
	require.NoError(t, err)

	nums := make([]int, len(res.Steps))
	for i, s := range res.Steps {
		nums[i] = s.Step
	}
	assert.Equal(t, []int{1, 2, 3, 5}, nums)
	assert.Equal(t, []string{"A", "D"}, res.Path)
}

func TestSearch_ParentFromFirstPush(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C", "D"}, map[string][]string{
		"A": {"B", "C"},
		"B": {"C"},
		"C": {"D"},
	})

	res, err := dfs.Search(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, currents(res.Steps))
	// C was reached through B but first pushed by A.
	assert.Equal(t, []string{"A", "C", "D"}, res.Path)
	assert.Equal(t, []string{"C"}, res.Steps[3].Stack, "stale copy of C stays on the stack")
}

func TestSearch_StartNotInGraph(t *testing.T) {
	g := buildGraph(t, []string{"A"}, nil)

	res, err := dfs.Search(g, "X", "A")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, []string{"X"}, currents(res.Steps))
}

func TestSearch_VisitedGrowsMonotonically(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C", "D", "E"}, map[string][]string{
		"A": {"B", "C"},
		"B": {"D", "A"},
		"C": {"E", "B"},
		"D": {"C"},
	})

	res, err := dfs.Search(g, "A", "E")
	require.NoError(t, err)
	require.True(t, res.Found)

	for i, s := range res.Steps {
		require.Len(t, s.Visited, i+1)
		assert.Equal(t, s.Current, s.Visited[i])
		if i > 0 {
			assert.Equal(t, res.Steps[i-1].Visited, s.Visited[:i])
			assert.Greater(t, s.Step, res.Steps[i-1].Step)
		}
	}
	assert.Equal(t, "A", res.Path[0])
	assert.Equal(t, "E", res.Path[len(res.Path)-1])
}

func TestSearch_PathFollowsEdges(t *testing.T) {
	g := buildGraph(t, []string{"S", "A", "B", "C", "T"}, map[string][]string{
		"S": {"A", "B"},
		"A": {"C"},
		"B": {"T"},
		"C": {"S"},
	})

	res, err := dfs.Search(g, "S", "T")
	require.NoError(t, err)
	require.True(t, res.Found)
	for i := 0; i+1 < len(res.Path); i++ {
		assert.Contains(t, g.Neighbors(res.Path[i]), res.Path[i+1])
	}
}

func TestSearch_StepsAreSnapshots(t *testing.T) {
	g := buildChain(t, 4)
	res, err := dfs.Search(g, "N0", "N3")
	require.NoError(t, err)

	res.Steps[0].Visited[0] = "mutated"
	assert.Equal(t, "N0", res.Steps[1].Visited[0])
}

func TestSearch_MaxSteps(t *testing.T) {
	g := buildChain(t, 10)

	res, err := dfs.Search(g, "N0", "N9", dfs.WithMaxSteps(3))
	assert.ErrorIs(t, err, dfs.ErrStepLimit)
	require.NotNil(t, res)
	assert.Len(t, res.Steps, 3)
	assert.False(t, res.Found)

	res, err = dfs.Search(g, "N0", "N9", dfs.WithMaxSteps(10))
	require.NoError(t, err)
	assert.True(t, res.Found)
}

func TestSearch_NegativeMaxSteps(t *testing.T) {
	res, err := dfs.Search(buildChain(t, 2), "N0", "N1", dfs.WithMaxSteps(-1))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

func TestSearch_OnStep(t *testing.T) {
	g := buildChain(t, 5)

	var seen []string
	res, err := dfs.Search(g, "N0", "N4", dfs.WithOnStep(func(s dfs.Step) error {
		seen = append(seen, s.Current)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, currents(res.Steps), seen)

	boom := errors.New("boom")
	res, err = dfs.Search(g, "N0", "N4", dfs.WithOnStep(func(s dfs.Step) error {
		if s.Current == "N2" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Len(t, res.Steps, 3, "the failing step is kept in the trace")
}

func TestSearch_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := dfs.Search(buildChain(t, 3), "N0", "N2", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Empty(t, res.Steps)
}

func TestSearch_NilContextIgnored(t *testing.T) {
	//nolint:staticcheck // nil context is deliberately tolerated
	res, err := dfs.Search(buildChain(t, 3), "N0", "N2", dfs.WithContext(nil))
	require.NoError(t, err)
	assert.True(t, res.Found)
}
