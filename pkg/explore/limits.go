package explore

import (
	"fmt"

	"github.com/aretw0/lingo/pkg/domain"
)

// Limits bounds a traversal.
type Limits struct {
	// MaxLength is the longest word, in runes, that may be explored. Must be > 0.
	MaxLength int

	// Capacities enables the per-edge capacity guard.
	Capacities bool
}

// Bound returns Limits with the given maximum word length and no capacity guard.
func Bound(maxLength int) Limits {
	return Limits{MaxLength: maxLength}
}

// WithCapacities returns a copy of l with the capacity guard enabled.
func (l Limits) WithCapacities() Limits {
	l.Capacities = true
	return l
}

// Validate rejects limits that cannot guarantee termination.
func (l Limits) Validate() error {
	if l.MaxLength <= 0 {
		return fmt.Errorf("%w: max length %d", domain.ErrInvalidBound, l.MaxLength)
	}
	return nil
}

// pathCounters tracks edge traversals along the current path, indexed by edge ID.
// Increments on descent are undone on backtrack, so sibling branches never
// observe each other's counts.
type pathCounters struct {
	a      *domain.Automaton
	limits Limits
	counts []int
	length int
}

func newPathCounters(a *domain.Automaton, limits Limits) *pathCounters {
	return &pathCounters{
		a:      a,
		limits: limits,
		counts: make([]int, a.NumEdges()),
	}
}

// eligible reports whether edge id may extend the current path.
func (c *pathCounters) eligible(id int) bool {
	if c.length >= c.limits.MaxLength {
		return false
	}
	if !c.limits.Capacities {
		return true
	}
	limit := c.a.Edge(id).Capacity
	return limit == 0 || c.counts[id] < limit
}

func (c *pathCounters) enter(id int) {
	c.counts[id]++
	c.length++
}

func (c *pathCounters) leave(id int) {
	c.counts[id]--
	c.length--
}
