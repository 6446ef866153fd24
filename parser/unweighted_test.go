package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsearch/core"
	"github.com/katalvlaran/graphsearch/parser"
)

// vietnameseSample is the combined-marker layout used by the course material.
const vietnameseSample = `A: B,C,D
B: I,G
C: F,E
D: F
E: G,K
F: K
I: G
K:
Trạng thái đầu: A; Trạng thái kết thúc: G`

func TestParseUnweighted_VietnameseCombined(t *testing.T) {
	p := parser.ParseUnweighted(vietnameseSample)

	assert.Equal(t, "A", p.Start)
	assert.Equal(t, "G", p.Goal)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "I", "K", "G"}, p.Graph.Nodes(),
		"declared nodes first, then neighbor-only nodes in first-mention order")
	assert.Equal(t, []string{"B", "C", "D"}, p.Graph.Neighbors("A"))
	assert.Empty(t, p.Graph.Neighbors("K"))
	assert.Empty(t, p.Graph.Neighbors("G"), "G is auto-registered with no neighbors")
}

func TestParseUnweighted_EnglishSeparateLines(t *testing.T) {
	p := parser.ParseUnweighted(`
Start: S
Goal: T

S: A, B
A: T
`)
	assert.Equal(t, "S", p.Start)
	assert.Equal(t, "T", p.Goal)
	assert.Equal(t, []string{"S", "A", "B", "T"}, p.Graph.Nodes())
}

func TestParseUnweighted_Markers(t *testing.T) {
	cases := []struct {
		name        string
		line        string
		start, goal string
	}{
		{"combined english", "Start: A; Goal: B", "A", "B"},
		{"combined mixed", "Start: A; Trạng thái kết thúc: B", "A", "B"},
		{"vietnamese start", "Trạng thái đầu: X", "X", ""},
		{"vietnamese goal", "Trạng thái kết thúc: Y", "", "Y"},
		{"english start no space", "Start:Q", "Q", ""},
		{"empty start", "Start:", "", ""},
		{"prefixed vietnamese start", "- Trạng thái đầu: A", "A", ""},
		{"prefixed vietnamese goal", "2) Trạng thái kết thúc: B", "", "B"},
		{"prefixed vietnamese combined", "* Trạng thái đầu: A; Trạng thái kết thúc: B", "A", "B"},
		{"goal first english", "Goal: B; Start: A", "A", "B"},
		{"goal first vietnamese", "Trạng thái kết thúc: B; Trạng thái đầu: A", "A", "B"},
		{"unknown vietnamese marker", "Trạng thái khác: X", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := parser.ParseUnweighted(tc.line)
			assert.Equal(t, tc.start, p.Start)
			assert.Equal(t, tc.goal, p.Goal)
			assert.Equal(t, 0, p.Graph.Len(), "marker lines must not become adjacency")
		})
	}
}

func TestParseUnweighted_PrefixedVietnameseMarkers(t *testing.T) {
	p := parser.ParseUnweighted("A: B\n- Trạng thái đầu: A\n- Trạng thái kết thúc: B")

	assert.Equal(t, "A", p.Start)
	assert.Equal(t, "B", p.Goal)
	assert.Equal(t, []string{"A", "B"}, p.Graph.Nodes(), "marker lines must not create nodes")
	assert.Equal(t, parser.ValidationResult{Valid: true}, p.Validate())
}

func TestParseUnweighted_LastDeclarationWins(t *testing.T) {
	p := parser.ParseUnweighted("Start: A\nStart: B\nA: X\nA: Y, Z")
	assert.Equal(t, "B", p.Start)
	assert.Equal(t, []string{"Y", "Z"}, p.Graph.Neighbors("A"))
}

func TestParseUnweighted_IgnoresNoise(t *testing.T) {
	p := parser.ParseUnweighted("just words\n: orphan\nA: B,, C ,\r\n")
	assert.Equal(t, []string{"A", "B", "C"}, p.Graph.Nodes())
	assert.Equal(t, []string{"B", "C"}, p.Graph.Neighbors("A"), "empty tokens dropped")
}

func TestParseUnweighted_NeverFailsOnEmpty(t *testing.T) {
	p := parser.ParseUnweighted("")
	require.NotNil(t, p.Graph)
	assert.Equal(t, 0, p.Graph.Len())
	assert.Empty(t, p.Start)
	assert.Empty(t, p.Goal)
}

func TestValidate(t *testing.T) {
	g := parser.ParseUnweighted("A: B\nB:").Graph

	cases := []struct {
		name  string
		graph *core.Graph
		start string
		goal  string
		want  parser.ValidationResult
	}{
		{"empty graph", core.NewGraph(), "A", "B", parser.ValidationResult{Error: "Graph is empty or invalid"}},
		{"nil graph", nil, "A", "B", parser.ValidationResult{Error: "Graph is empty or invalid"}},
		{"missing start", g, "", "B", parser.ValidationResult{Error: "Start node not specified"}},
		{"missing goal", g, "A", "", parser.ValidationResult{Error: "Goal node not specified"}},
		{"start absent", g, "X", "B", parser.ValidationResult{Error: "Start node 'X' not found in graph"}},
		{"goal absent", g, "A", "Y", parser.ValidationResult{Error: "Goal node 'Y' not found in graph"}},
		{"valid", g, "A", "B", parser.ValidationResult{Valid: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parser.Validate(tc.graph, tc.start, tc.goal))
		})
	}
}

func TestValidationResult_Err(t *testing.T) {
	assert.NoError(t, parser.ValidationResult{Valid: true}.Err())

	p := parser.ParseUnweighted("A: B")
	err := p.Validate().Err()
	require.Error(t, err)
	assert.EqualError(t, err, "parser: Start node not specified")
}

func TestFormatUnweighted_RoundTrip(t *testing.T) {
	p := parser.ParseUnweighted(vietnameseSample)
	text := parser.FormatUnweighted(p)

	again := parser.ParseUnweighted(text)
	assert.True(t, p.Graph.Equal(again.Graph), "reparsed graph differs:\n%s", text)
	assert.Equal(t, p.Start, again.Start)
	assert.Equal(t, p.Goal, again.Goal)
	assert.Equal(t, text, parser.FormatUnweighted(again), "formatting is a fixed point")
}

func TestFormatUnweighted_Layout(t *testing.T) {
	p := parser.ParseUnweighted("Start: A; Goal: C\nA: B, C")
	assert.Equal(t, "A: B, C\nB:\nC:\nStart: A\nGoal: C\n", parser.FormatUnweighted(p))
}
