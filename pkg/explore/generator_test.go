package explore_test

import (
	"context"
	"testing"

	"github.com/aretw0/lingo/pkg/domain"
	"github.com/aretw0/lingo/pkg/dsl"
	"github.com/aretw0/lingo/pkg/explore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Scenario(t *testing.T) {
	tests := []struct {
		name   string
		limits explore.Limits
		want   []string
	}{
		{
			name:   "Capacities Govern",
			limits: explore.Bound(10).WithCapacities(),
			want:   []string{"abbc", "abc", "ac"},
		},
		{
			name:   "Length Governs",
			limits: explore.Bound(5),
			want:   []string{"abbbc", "abbc", "abc", "ac"},
		},
		{
			name:   "Both Guards Tighter Length",
			limits: explore.Bound(3).WithCapacities(),
			want:   []string{"abc", "ac"},
		},
		{
			name:   "Bound Below Shortest Word",
			limits: explore.Bound(1),
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := explore.GenerateFromInitial(scenarioA(), tt.limits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, words)
		})
	}
}

func TestGenerate_CapacityCountersArePathLocal(t *testing.T) {
	// "abc" and "ac" both cross the capped 1->2 edge once. A shared counter
	// would let only the first discovered word through.
	words, err := explore.GenerateFromInitial(scenarioA(), explore.Bound(10).WithCapacities())
	require.NoError(t, err)
	assert.Contains(t, words, "abc")
	assert.Contains(t, words, "ac")
}

func TestGenerate_CyclesTerminate(t *testing.T) {
	words, err := explore.GenerateFromInitial(loops(), explore.Bound(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"", "x", "xx", "yy"}, words)
}

func TestGenerate_TerminalContinuesExploring(t *testing.T) {
	b := dsl.New()
	b.Add(0).Initial().On('a', 1)
	b.Add(1).Terminal().On('b', 2)
	b.Add(2).Terminal()

	words, err := explore.GenerateFromInitial(b.MustBuild(), explore.Bound(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "ab"}, words)
}

func TestGenerate_NoDuplicates(t *testing.T) {
	// Two distinct paths spell "ab".
	b := dsl.New()
	b.Add(0).Initial().On('a', 1).On('a', 2)
	b.Add(1).On('b', 3)
	b.Add(2).On('b', 3)
	b.Add(3).Terminal()

	words, err := explore.GenerateFromInitial(b.MustBuild(), explore.Bound(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"ab"}, words)

	loopWords, err := explore.GenerateFromInitial(loops(), explore.Bound(6))
	require.NoError(t, err)
	seen := make(map[string]bool)
	for _, w := range loopWords {
		assert.False(t, seen[w], "duplicate word %q", w)
		seen[w] = true
	}
}

func TestGenerate_EdgeCases(t *testing.T) {
	t.Run("Zero States", func(t *testing.T) {
		a := domain.MustNew(nil, nil)
		words, err := explore.Generate(a, 0, explore.Bound(3))
		require.NoError(t, err)
		assert.Empty(t, words)

		words, err = explore.GenerateFromInitial(a, explore.Bound(3))
		require.NoError(t, err)
		assert.Empty(t, words)
	})

	t.Run("Terminal Start Without Edges", func(t *testing.T) {
		b := dsl.New()
		b.Add(0).Initial().Terminal()
		words, err := explore.GenerateFromInitial(b.MustBuild(), explore.Bound(3))
		require.NoError(t, err)
		assert.Equal(t, []string{""}, words)
	})

	t.Run("Start Out Of Range", func(t *testing.T) {
		_, err := explore.Generate(scenarioA(), 7, explore.Bound(3))
		assert.ErrorIs(t, err, domain.ErrStartOutOfRange)

		_, err = explore.Generate(scenarioA(), -1, explore.Bound(3))
		assert.ErrorIs(t, err, domain.ErrStartOutOfRange)
	})

	t.Run("Non Initial Start", func(t *testing.T) {
		words, err := explore.Generate(scenarioA(), 1, explore.Bound(3))
		require.NoError(t, err)
		assert.Equal(t, []string{"bbc", "bc", "c"}, words)
	})
}

func TestGenerate_InvalidBound(t *testing.T) {
	for _, bound := range []int{0, -4} {
		_, err := explore.GenerateFromInitial(scenarioA(), explore.Bound(bound))
		assert.ErrorIs(t, err, domain.ErrInvalidBound)

		_, err = explore.GenerateFromInitial(domain.MustNew(nil, nil), explore.Bound(bound))
		assert.ErrorIs(t, err, domain.ErrInvalidBound, "bound is checked even when there is nothing to explore")
	}
}

func TestGenerate_Hooks(t *testing.T) {
	var accepted []string
	visits, backtracks := 0, 0
	ex := explore.New(explore.WithHooks(domain.LifecycleHooks{
		OnVisit:     func(context.Context, *domain.VisitEvent) { visits++ },
		OnBacktrack: func(context.Context, *domain.VisitEvent) { backtracks++ },
		OnAccept: func(_ context.Context, e *domain.AcceptEvent) {
			assert.Equal(t, 2, e.State)
			accepted = append(accepted, e.Word)
		},
	}))

	words, err := ex.GenerateFromInitial(context.Background(), scenarioA(), explore.Bound(10).WithCapacities())
	require.NoError(t, err)
	assert.Equal(t, words, accepted)
	assert.Equal(t, visits, backtracks, "every entered state is left exactly once")
}

func TestGenerate_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := explore.New().GenerateFromInitial(ctx, loops(), explore.Bound(20))
	assert.ErrorIs(t, err, context.Canceled)
}
