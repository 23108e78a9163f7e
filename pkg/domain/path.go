package domain

import (
	"strconv"
	"strings"
)

// Path is the ordered sequence of state indices visited by one accepting traversal,
// including the start state.
type Path []int

// String renders the path as "0 -> 1 -> 2".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, " -> ")
}

// Clone returns an independent copy.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	return append(Path(nil), p...)
}
