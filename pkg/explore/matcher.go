package explore

import (
	"context"

	"github.com/aretw0/lingo/pkg/domain"
)

// Match reports whether word is produced by some traversal from the initial
// state to a terminal state, and returns that traversal's state path.
//
// Each stack level consumes one rune. Edges sharing the needed label are tried
// in destination order; a level whose candidates are exhausted is popped, so the
// returned path only ever holds the successful route. Words longer than
// limits.MaxLength are not found.
func (e *Explorer) Match(ctx context.Context, word string, a *domain.Automaton, limits Limits) (bool, domain.Path, error) {
	if err := limits.Validate(); err != nil {
		return false, nil, err
	}
	if !a.HasInitial() {
		return false, nil, domain.ErrNoInitialState
	}

	runes := []rune(word)
	found, path, steps, err := e.match(ctx, runes, a, limits)
	if err != nil {
		return false, nil, err
	}

	e.logger.Debug("match finished", "word", word, "found", found, "steps", steps)
	if e.hooks.OnMatch != nil {
		e.hooks.OnMatch(ctx, &domain.MatchEvent{Word: word, Found: found, Path: path.Clone(), Steps: steps})
	}
	return found, path, nil
}

func (e *Explorer) match(ctx context.Context, word []rune, a *domain.Automaton, limits Limits) (bool, domain.Path, int, error) {
	if len(word) > limits.MaxLength {
		return false, nil, 0, nil
	}

	counters := newPathCounters(a, limits)
	stack := make([]frame, 0, len(word)+1)
	steps := 0

	accepted := func() bool {
		top := stack[len(stack)-1]
		return len(stack)-1 == len(word) && a.IsTerminal(top.state)
	}

	stack = append(stack, frame{state: a.Initial(), via: -1})
	if accepted() {
		return true, domain.Path{a.Initial()}, steps, nil
	}

	for len(stack) > 0 {
		steps++
		if steps%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return false, nil, steps, err
			}
		}

		top := &stack[len(stack)-1]
		consumed := len(stack) - 1
		out := a.Outgoing(top.state)

		next := -1
		if consumed < len(word) {
			for top.cursor < len(out) {
				id := out[top.cursor]
				top.cursor++
				if a.Edge(id).Label == word[consumed] && counters.eligible(id) {
					next = id
					break
				}
			}
		}

		if next < 0 {
			// Dead end: drop the tentative state and release its edge.
			done := *top
			stack = stack[:len(stack)-1]
			if done.via >= 0 {
				counters.leave(done.via)
			}
			if e.hooks.OnBacktrack != nil {
				e.hooks.OnBacktrack(ctx, &domain.VisitEvent{Type: domain.EventBacktrack, State: done.state, Depth: consumed, Word: string(word[:consumed])})
			}
			continue
		}

		edge := a.Edge(next)
		counters.enter(next)
		stack = append(stack, frame{state: edge.To, via: next})
		if e.hooks.OnVisit != nil {
			e.hooks.OnVisit(ctx, &domain.VisitEvent{Type: domain.EventVisit, State: edge.To, Depth: len(stack) - 1, Word: string(word[:len(stack)-1])})
		}
		if accepted() {
			path := make(domain.Path, len(stack))
			for i, f := range stack {
				path[i] = f.state
			}
			return true, path, steps, nil
		}
	}

	return false, nil, steps, nil
}

// Match runs the default Explorer. See Explorer.Match.
func Match(word string, a *domain.Automaton, limits Limits) (bool, domain.Path, error) {
	return defaultExplorer.Match(context.Background(), word, a, limits)
}
