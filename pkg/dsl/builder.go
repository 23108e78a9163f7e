package dsl

import (
	"fmt"
	"sort"

	"github.com/aretw0/lingo/pkg/domain"
)

// Builder manages the automaton construction.
type Builder struct {
	states map[int]*StateBuilder
	errs   []error
}

// New creates a new automaton builder.
func New() *Builder {
	return &Builder{
		states: make(map[int]*StateBuilder),
	}
}

// Add declares the state at index.
// If the state already exists, it returns the existing builder.
func (b *Builder) Add(index int) *StateBuilder {
	if sb, ok := b.states[index]; ok {
		return sb
	}
	sb := &StateBuilder{
		state:   domain.NewState(index, false, false),
		edges:   make(map[int]domain.Transition),
		builder: b,
	}
	if index < 0 {
		b.errs = append(b.errs, fmt.Errorf("negative state index %d", index))
		return sb
	}
	b.states[index] = sb
	return sb
}

// Build validates the declared states and edges and returns the automaton.
// Destinations that were never declared become plain states; the state count
// is one past the highest index referenced.
func (b *Builder) Build() (*domain.Automaton, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("invalid automaton definition: %w", b.errs[0])
	}

	n := 0
	for idx, sb := range b.states {
		n = max(n, idx+1)
		for to := range sb.edges {
			n = max(n, to+1)
		}
	}

	states := make([]domain.State, n)
	matrix := make([][]domain.Transition, n)
	for i := range n {
		states[i] = domain.NewState(i, false, false)
		matrix[i] = make([]domain.Transition, n)
	}

	indices := make([]int, 0, len(b.states))
	for idx := range b.states {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	for _, idx := range indices {
		sb := b.states[idx]
		states[idx] = sb.state
		for to, t := range sb.edges {
			matrix[idx][to] = t
		}
	}

	a, err := domain.New(states, matrix)
	if err != nil {
		return nil, fmt.Errorf("failed to build automaton: %w", err)
	}
	return a, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *domain.Automaton {
	a, err := b.Build()
	if err != nil {
		panic(err)
	}
	return a
}
