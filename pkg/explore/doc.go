/*
Package explore implements bounded traversal of a domain.Automaton.

The Generator enumerates accepted words, the Matcher verifies a single word and
reconstructs its state path, and the set algebra combines the languages of two
automata. Every entry point requires a validated Limits value before any
traversal begins, so exploration of a cyclic graph always terminates.

# Guards

Two guards are configured independently through Limits:

  - MaxLength (mandatory): no word longer than MaxLength runes is explored.
  - Capacities (optional): an edge with a positive capacity is traversed at most
    that many times on a single path. Counters are path-local.

When both are active, a word is accepted only if it satisfies both. A zero
capacity leaves an edge governed by MaxLength alone.

# Usage

	ex := explore.New(explore.WithLogger(logger))
	words, err := ex.Generate(ctx, a, a.Initial(), explore.Bound(8).WithCapacities())
	found, path, err := ex.Match(ctx, "abc", a, explore.Bound(8))
*/
package explore
