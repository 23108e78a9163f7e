package explore

import (
	"context"
	"fmt"

	"github.com/aretw0/lingo/pkg/domain"
)

// frame is one level of the explicit depth-first work-stack.
type frame struct {
	state  int
	cursor int // next position in Outgoing(state)
	via    int // edge used to enter state, -1 for the root
}

// Generate enumerates every distinct word accepted from start within limits.
// Words are returned in depth-first discovery order, outgoing edges tried by
// ascending destination index. An empty automaton yields no words.
func (e *Explorer) Generate(ctx context.Context, a *domain.Automaton, start int, limits Limits) ([]string, error) {
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	if a.Len() == 0 {
		return []string{}, nil
	}
	if !a.InRange(start) {
		return nil, fmt.Errorf("%w: %d (automaton has %d states)", domain.ErrStartOutOfRange, start, a.Len())
	}

	e.logger.Debug("generate started", "start", start, "max_length", limits.MaxLength, "capacities", limits.Capacities)

	var (
		words    = []string{}
		seen     = make(map[string]struct{})
		word     []rune
		counters = newPathCounters(a, limits)
		stack    = make([]frame, 0, min(limits.MaxLength+1, 64))
		steps    int
	)

	enter := func(state, via int) {
		stack = append(stack, frame{state: state, via: via})
		current := string(word)
		if e.hooks.OnVisit != nil {
			e.hooks.OnVisit(ctx, &domain.VisitEvent{Type: domain.EventVisit, State: state, Depth: len(word), Word: current})
		}
		if !a.IsTerminal(state) {
			return
		}
		if _, dup := seen[current]; dup {
			return
		}
		seen[current] = struct{}{}
		words = append(words, current)
		if e.hooks.OnAccept != nil {
			e.hooks.OnAccept(ctx, &domain.AcceptEvent{State: state, Word: current})
		}
	}

	enter(start, -1)
	for len(stack) > 0 {
		steps++
		if steps%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		top := &stack[len(stack)-1]
		out := a.Outgoing(top.state)

		if top.cursor == len(out) {
			// Exhausted: roll back this level's edge before returning to the parent.
			done := *top
			if e.hooks.OnBacktrack != nil {
				e.hooks.OnBacktrack(ctx, &domain.VisitEvent{Type: domain.EventBacktrack, State: done.state, Depth: len(word), Word: string(word)})
			}
			stack = stack[:len(stack)-1]
			if done.via >= 0 {
				counters.leave(done.via)
				word = word[:len(word)-1]
			}
			continue
		}

		id := out[top.cursor]
		top.cursor++
		if !counters.eligible(id) {
			continue
		}

		edge := a.Edge(id)
		counters.enter(id)
		word = append(word, edge.Label)
		enter(edge.To, id)
	}

	e.logger.Debug("generate finished", "start", start, "words", len(words), "steps", steps)
	return words, nil
}

// GenerateFromInitial enumerates the accepted words starting at the initial state.
func (e *Explorer) GenerateFromInitial(ctx context.Context, a *domain.Automaton, limits Limits) ([]string, error) {
	if a.Len() == 0 {
		if err := limits.Validate(); err != nil {
			return nil, err
		}
		return []string{}, nil
	}
	return e.Generate(ctx, a, a.Initial(), limits)
}

// Generate runs the default Explorer. See Explorer.Generate.
func Generate(a *domain.Automaton, start int, limits Limits) ([]string, error) {
	return defaultExplorer.Generate(context.Background(), a, start, limits)
}

// GenerateFromInitial runs the default Explorer. See Explorer.GenerateFromInitial.
func GenerateFromInitial(a *domain.Automaton, limits Limits) ([]string, error) {
	return defaultExplorer.GenerateFromInitial(context.Background(), a, limits)
}
