package dsl

import (
	"fmt"

	"github.com/aretw0/lingo/pkg/domain"
)

// EdgeOption configures an edge added with On.
type EdgeOption func(domain.Transition) domain.Transition

// Capacity caps how many times the edge may be traversed on one path.
func Capacity(n int) EdgeOption {
	return func(t domain.Transition) domain.Transition {
		return t.WithCapacity(n)
	}
}

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	state   domain.State
	edges   map[int]domain.Transition
	builder *Builder
}

// Initial marks the state as the entry state.
func (s *StateBuilder) Initial() *StateBuilder {
	s.state.Initial = true
	return s
}

// Terminal marks the state as accepting.
func (s *StateBuilder) Terminal() *StateBuilder {
	s.state.Terminal = true
	return s
}

// On adds an edge labeled label from this state to the state at index to.
// The matrix holds one transition per pair, so a second edge to the same
// destination is reported by Build.
func (s *StateBuilder) On(label rune, to int, opts ...EdgeOption) *StateBuilder {
	if to < 0 {
		s.builder.errs = append(s.builder.errs, fmt.Errorf("state %d: negative destination %d", s.state.Index, to))
		return s
	}
	if prev, ok := s.edges[to]; ok {
		s.builder.errs = append(s.builder.errs, fmt.Errorf("state %d: duplicate edge to %d (%s and %c)", s.state.Index, to, prev, label))
		return s
	}
	t := domain.Edge(label)
	for _, opt := range opts {
		t = opt(t)
	}
	s.edges[to] = t
	return s
}

// Build returns the configured state.
// This is primarily used by the Builder, but exposed for advanced usage.
func (s *StateBuilder) Build() domain.State {
	return s.state
}
