package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/lingo/internal/presentation/graph"
	"github.com/aretw0/lingo/pkg/domain"
	"github.com/aretw0/lingo/pkg/dsl"
	"github.com/stretchr/testify/assert"
)

func scenario() *domain.Automaton {
	b := dsl.New()
	b.Add(0).Initial().On('a', 1, dsl.Capacity(1))
	b.Add(1).On('b', 1, dsl.Capacity(2)).On('c', 2)
	b.Add(2).Terminal()
	return b.MustBuild()
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		overlay  *graph.Overlay
		contains []string
		excludes []string
	}{
		{
			name: "Shapes",
			contains: []string{
				"graph LR",
				`q0("q0")`,
				`q1("q1")`,
				`q2(("q2"))`,
			},
		},
		{
			name: "Start Marker",
			contains: []string{
				"start --> q0",
				"classDef hidden display:none;",
			},
		},
		{
			name: "Edges With Capacity",
			contains: []string{
				`q0 -- "a/1" --> q1`,
				`q1 -- "b/2" --> q1`,
				`q1 -- "c" --> q2`,
			},
		},
		{
			name:     "No Overlay",
			excludes: []string{"classDef visited", "class q"},
		},
		{
			name:    "Path Overlay",
			overlay: graph.PathOverlay(domain.Path{0, 1, 1, 2}),
			contains: []string{
				"class q0 visited;",
				"class q1 visited;",
				"class q2 current;",
			},
			excludes: []string{"class q2 visited;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := graph.GenerateMermaid(scenario(), tt.overlay)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestGenerateMermaid_QuotedLabel(t *testing.T) {
	b := dsl.New()
	b.Add(0).Initial().On('"', 1)
	b.Add(1).Terminal()

	out := graph.GenerateMermaid(b.MustBuild(), nil)
	assert.Contains(t, out, `q0 -- "#quot;" --> q1`)
}

func TestGenerateMermaid_Empty(t *testing.T) {
	a := domain.MustNew(nil, nil)
	out := graph.GenerateMermaid(a, nil)
	assert.Equal(t, "graph LR\n", out)
	assert.False(t, strings.Contains(out, "start"))
}
