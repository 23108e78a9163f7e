package domain

import (
	"fmt"
)

// Automaton owns a validated state list and transition matrix.
// It is immutable after construction; accessors return copies.
type Automaton struct {
	states  []State
	matrix  [][]Transition
	initial int

	// edges is the arena of present transitions, addressed by EdgeRef.ID.
	edges []EdgeRef
	// outgoing holds edge IDs per source state, ordered by destination index.
	outgoing [][]int
}

// New validates states and matrix and builds the edge arena.
// States may be given in any order; they are stored by index.
// An automaton with zero states is valid and has no initial state.
func New(states []State, matrix [][]Transition) (*Automaton, error) {
	n := len(states)
	if len(matrix) != n {
		return nil, fmt.Errorf("%w: %d rows for %d states", ErrDimensionMismatch, len(matrix), n)
	}
	for i, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, i, len(row), n)
		}
	}

	ordered := make([]State, n)
	seen := make([]bool, n)
	for _, s := range states {
		if s.Index < 0 || s.Index >= n {
			return nil, fmt.Errorf("%w: index %d outside 0..%d", ErrInvalidStateIndex, s.Index, n-1)
		}
		if seen[s.Index] {
			return nil, fmt.Errorf("%w: duplicate index %d", ErrInvalidStateIndex, s.Index)
		}
		seen[s.Index] = true
		ordered[s.Index] = s
	}

	initial := -1
	for _, s := range ordered {
		if !s.Initial {
			continue
		}
		if initial >= 0 {
			return nil, fmt.Errorf("%w: states %d and %d", ErrMultipleInitialStates, initial, s.Index)
		}
		initial = s.Index
	}
	if n > 0 && initial < 0 {
		return nil, ErrNoInitialState
	}

	a := &Automaton{
		states:   ordered,
		matrix:   make([][]Transition, n),
		initial:  initial,
		outgoing: make([][]int, n),
	}
	for i, row := range matrix {
		a.matrix[i] = append([]Transition(nil), row...)
		for j, t := range row {
			if !t.IsEdge() {
				continue
			}
			id := len(a.edges)
			a.edges = append(a.edges, EdgeRef{
				ID:       id,
				From:     i,
				To:       j,
				Label:    t.Label(),
				Capacity: t.Capacity(),
			})
			a.outgoing[i] = append(a.outgoing[i], id)
		}
	}

	return a, nil
}

// MustNew is like New but panics on error. Intended for literals in tests and examples.
func MustNew(states []State, matrix [][]Transition) *Automaton {
	a, err := New(states, matrix)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the number of states.
func (a *Automaton) Len() int {
	return len(a.states)
}

// HasInitial reports whether the automaton has an initial state.
func (a *Automaton) HasInitial() bool {
	return a.initial >= 0
}

// Initial returns the index of the initial state, or -1 for an empty automaton.
func (a *Automaton) Initial() int {
	return a.initial
}

// State returns the state at index i.
func (a *Automaton) State(i int) State {
	return a.states[i]
}

// States returns a copy of the states ordered by index.
func (a *Automaton) States() []State {
	return append([]State(nil), a.states...)
}

// IsTerminal reports whether state i accepts.
func (a *Automaton) IsTerminal(i int) bool {
	return a.states[i].Terminal
}

// InRange reports whether i addresses a state.
func (a *Automaton) InRange(i int) bool {
	return i >= 0 && i < len(a.states)
}

// At returns the matrix cell for (from, to).
func (a *Automaton) At(from, to int) Transition {
	return a.matrix[from][to]
}

// Matrix returns a copy of the transition matrix.
func (a *Automaton) Matrix() [][]Transition {
	out := make([][]Transition, len(a.matrix))
	for i, row := range a.matrix {
		out[i] = append([]Transition(nil), row...)
	}
	return out
}

// Edges returns the arena of present transitions.
func (a *Automaton) Edges() []EdgeRef {
	return append([]EdgeRef(nil), a.edges...)
}

// NumEdges returns the size of the edge arena.
func (a *Automaton) NumEdges() int {
	return len(a.edges)
}

// Edge returns the arena entry with the given ID.
func (a *Automaton) Edge(id int) EdgeRef {
	return a.edges[id]
}

// Outgoing returns the edge IDs leaving state i, ordered by destination.
// The returned slice must not be modified.
func (a *Automaton) Outgoing(i int) []int {
	return a.outgoing[i]
}

// Alphabet returns the distinct labels in edge-arena order.
func (a *Automaton) Alphabet() []rune {
	seen := make(map[rune]bool)
	var out []rune
	for _, e := range a.edges {
		if !seen[e.Label] {
			seen[e.Label] = true
			out = append(out, e.Label)
		}
	}
	return out
}
