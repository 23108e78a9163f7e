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

func TestMatch_Scenario(t *testing.T) {
	tests := []struct {
		name      string
		word      string
		limits    explore.Limits
		wantFound bool
		wantPath  domain.Path
	}{
		{
			name:      "Accepted With Loop",
			word:      "abc",
			limits:    explore.Bound(10).WithCapacities(),
			wantFound: true,
			wantPath:  domain.Path{0, 1, 1, 2},
		},
		{
			name:      "Shortest Word",
			word:      "ac",
			limits:    explore.Bound(10).WithCapacities(),
			wantFound: true,
			wantPath:  domain.Path{0, 1, 2},
		},
		{
			name:      "Exceeds Loop Capacity",
			word:      "abbbc",
			limits:    explore.Bound(10).WithCapacities(),
			wantFound: false,
		},
		{
			name:      "Same Word Without Capacity Guard",
			word:      "abbbc",
			limits:    explore.Bound(10),
			wantFound: true,
			wantPath:  domain.Path{0, 1, 1, 1, 1, 2},
		},
		{
			name:      "Longer Than Bound",
			word:      "abbc",
			limits:    explore.Bound(3),
			wantFound: false,
		},
		{
			name:      "Exhausted At Non Terminal",
			word:      "ab",
			limits:    explore.Bound(10),
			wantFound: false,
		},
		{
			name:      "Unknown Label",
			word:      "az",
			limits:    explore.Bound(10),
			wantFound: false,
		},
		{
			name:      "Trailing Input After Terminal",
			word:      "acc",
			limits:    explore.Bound(10),
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, path, err := explore.Match(tt.word, scenarioA(), tt.limits)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.wantPath, path)
			} else {
				assert.Nil(t, path)
			}
		})
	}
}

func TestMatch_NondeterminismRollsBackPath(t *testing.T) {
	found, path, err := explore.Match("ab", nondeterministic(), explore.Bound(4))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.Path{0, 2, 3}, path, "the failed branch through state 1 must not remain in the path")

	found, path, err = explore.Match("ac", nondeterministic(), explore.Bound(4))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.Path{0, 1, 3}, path)
}

func TestMatch_EmptyWord(t *testing.T) {
	found, path, err := explore.Match("", scenarioA(), explore.Bound(1))
	require.NoError(t, err)
	assert.False(t, found, "initial state of A is not terminal")
	assert.Nil(t, path)

	found, path, err = explore.Match("", loops(), explore.Bound(1))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, domain.Path{0}, path)
}

func TestMatch_Unicode(t *testing.T) {
	b := dsl.New()
	b.Add(0).Initial().On('λ', 1)
	b.Add(1).Terminal().On('é', 1)

	found, path, err := explore.Match("λéé", b.MustBuild(), explore.Bound(3))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, domain.Path{0, 1, 1, 1}, path)
}

func TestMatch_Errors(t *testing.T) {
	_, _, err := explore.Match("abc", scenarioA(), explore.Bound(0))
	assert.ErrorIs(t, err, domain.ErrInvalidBound)

	_, _, err = explore.Match("", domain.MustNew(nil, nil), explore.Bound(3))
	assert.ErrorIs(t, err, domain.ErrNoInitialState)
}

func TestMatch_Hooks(t *testing.T) {
	var got *domain.MatchEvent
	ex := explore.New(explore.WithHooks(domain.LifecycleHooks{
		OnMatch: func(_ context.Context, e *domain.MatchEvent) { got = e },
	}))

	found, path, err := ex.Match(context.Background(), "ab", nondeterministic(), explore.Bound(4))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ab", got.Word)
	assert.Equal(t, found, got.Found)
	assert.Equal(t, path, got.Path)
	assert.Positive(t, got.Steps)
}
