package explore

import (
	"context"
	"fmt"

	"github.com/aretw0/lingo/pkg/domain"
)

// Union concatenates the languages of a and b, each generated from its initial
// state. Words accepted by both appear twice; use UnionSet for set semantics.
func (e *Explorer) Union(ctx context.Context, a, b *domain.Automaton, limits Limits) ([]string, error) {
	left, right, err := e.generatePair(ctx, a, b, limits)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(left)+len(right))
	out = append(out, left...)
	return append(out, right...), nil
}

// UnionSet is the deduplicated union of the languages of a and b.
// Order follows a, then the words only b accepts.
func (e *Explorer) UnionSet(ctx context.Context, a, b *domain.Automaton, limits Limits) ([]string, error) {
	words, err := e.Union(ctx, a, b, limits)
	if err != nil {
		return nil, err
	}
	return dedupe(words), nil
}

// Intersect returns the words accepted by both a and b, in the order a produced them.
func (e *Explorer) Intersect(ctx context.Context, a, b *domain.Automaton, limits Limits) ([]string, error) {
	left, right, err := e.generatePair(ctx, a, b, limits)
	if err != nil {
		return nil, err
	}

	out := []string{}
	for _, wa := range left {
		for _, wb := range right {
			if wa == wb {
				out = append(out, wa)
			}
		}
	}
	return dedupe(out), nil
}

func (e *Explorer) generatePair(ctx context.Context, a, b *domain.Automaton, limits Limits) ([]string, []string, error) {
	left, err := e.GenerateFromInitial(ctx, a, limits)
	if err != nil {
		return nil, nil, fmt.Errorf("left operand: %w", err)
	}
	right, err := e.GenerateFromInitial(ctx, b, limits)
	if err != nil {
		return nil, nil, fmt.Errorf("right operand: %w", err)
	}
	return left, right, nil
}

func dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Union runs the default Explorer. See Explorer.Union.
func Union(a, b *domain.Automaton, limits Limits) ([]string, error) {
	return defaultExplorer.Union(context.Background(), a, b, limits)
}

// UnionSet runs the default Explorer. See Explorer.UnionSet.
func UnionSet(a, b *domain.Automaton, limits Limits) ([]string, error) {
	return defaultExplorer.UnionSet(context.Background(), a, b, limits)
}

// Intersect runs the default Explorer. See Explorer.Intersect.
func Intersect(a, b *domain.Automaton, limits Limits) ([]string, error) {
	return defaultExplorer.Intersect(context.Background(), a, b, limits)
}
