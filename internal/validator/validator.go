package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/lingo/pkg/domain"
)

// Report lists the structural problems found in an automaton.
// None of them make the automaton invalid; they flag states that can never
// contribute to an accepted word.
type Report struct {
	// Unreachable states cannot be entered from the initial state.
	Unreachable []int
	// Dead states are reachable but cannot reach any terminal state.
	Dead []int
	// NoTerminal is set when the automaton has no terminal state at all.
	NoTerminal bool
}

// OK reports whether no issue was found.
func (r Report) OK() bool {
	return len(r.Unreachable) == 0 && len(r.Dead) == 0 && !r.NoTerminal
}

// Issues renders one line per problem.
func (r Report) Issues() []string {
	var issues []string
	if r.NoTerminal {
		issues = append(issues, "no terminal state: the language is empty")
	}
	for _, s := range r.Unreachable {
		issues = append(issues, fmt.Sprintf("state %d is unreachable from the initial state", s))
	}
	for _, s := range r.Dead {
		issues = append(issues, fmt.Sprintf("state %d cannot reach a terminal state", s))
	}
	return issues
}

// Err returns nil when the report is clean, or an error listing every issue.
func (r Report) Err() error {
	issues := r.Issues()
	if len(issues) == 0 {
		return nil
	}
	return fmt.Errorf("found %d issues:\n- %s", len(issues), strings.Join(issues, "\n- "))
}

// Inspect crawls the automaton from its initial state, then walks the
// reversed edges from every terminal state.
func Inspect(a *domain.Automaton) Report {
	var r Report
	if a.Len() == 0 {
		return r
	}

	forward := crawl(a.Len(), []int{a.Initial()}, func(s int) []int {
		out := a.Outgoing(s)
		next := make([]int, len(out))
		for i, id := range out {
			next[i] = a.Edge(id).To
		}
		return next
	})

	incoming := make([][]int, a.Len())
	var terminals []int
	for _, e := range a.Edges() {
		incoming[e.To] = append(incoming[e.To], e.From)
	}
	for _, s := range a.States() {
		if s.Terminal {
			terminals = append(terminals, s.Index)
		}
	}
	r.NoTerminal = len(terminals) == 0

	backward := crawl(a.Len(), terminals, func(s int) []int { return incoming[s] })

	for i := range a.Len() {
		switch {
		case !forward[i]:
			r.Unreachable = append(r.Unreachable, i)
		case !backward[i] && !r.NoTerminal:
			r.Dead = append(r.Dead, i)
		}
	}
	return r
}

// crawl runs a breadth-first search from roots and returns the visited set.
func crawl(n int, roots []int, next func(int) []int) []bool {
	visited := make([]bool, n)
	queue := append([]int(nil), roots...)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, target := range next(current) {
			if !visited[target] {
				queue = append(queue, target)
			}
		}
	}
	return visited
}
