package domain

import "fmt"

// Transition is one cell of the transition matrix.
// The zero value is NoEdge, so an unset cell never reads as a labeled edge.
type Transition struct {
	label    rune
	present  bool
	capacity int
}

// Edge creates a present transition carrying label.
func Edge(label rune) Transition {
	return Transition{label: label, present: true}
}

// NoEdge returns the explicit absent transition.
func NoEdge() Transition {
	return Transition{}
}

// WithCapacity returns a copy of t that may be traversed at most n times per path
// when the capacity guard is enabled. A capacity of 0 means uncapped; negative n
// is treated as 0 (persisted documents with a negative max_transit fail to decode).
func (t Transition) WithCapacity(n int) Transition {
	if n < 0 {
		n = 0
	}
	t.capacity = n
	return t
}

// IsEdge reports whether the transition is present.
func (t Transition) IsEdge() bool {
	return t.present
}

// Label returns the edge label. It is meaningless for NoEdge.
func (t Transition) Label() rune {
	return t.label
}

// Capacity returns the per-path traversal cap (0 = uncapped).
func (t Transition) Capacity() int {
	return t.capacity
}

func (t Transition) String() string {
	if !t.present {
		return "∅"
	}
	if t.capacity > 0 {
		return fmt.Sprintf("%c/%d", t.label, t.capacity)
	}
	return string(t.label)
}

// EdgeRef is a present transition addressed by its arena identity.
type EdgeRef struct {
	ID       int
	From     int
	To       int
	Label    rune
	Capacity int
}
