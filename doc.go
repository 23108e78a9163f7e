/*
Package lingo explores the language of small finite-state automata.

Given an automaton (states with initial/terminal flags and a matrix of labeled
transitions) it enumerates every accepted word up to a bound, checks whether a
single word is accepted and reports the state path that accepts it, and
composes the languages of two automata by union and intersection.

# Guards

Cycles make a language infinite, so every exploration is bounded. The length
guard is mandatory: no word longer than Limits.MaxLength is explored. The
capacity guard is optional: with Limits.Capacities set, an edge with a
capacity of n is traversed at most n times along a single path.

# Usage

	b := dsl.New()
	b.Add(0).Initial().On('a', 1)
	b.Add(1).On('b', 1, dsl.Capacity(2)).On('c', 2)
	b.Add(2).Terminal()
	a := b.MustBuild()

	eng, err := lingo.New(lingo.WithLimits(explore.Bound(8).WithCapacities()))
	if err != nil {
		log.Fatal(err)
	}

	words, _ := eng.Generate(ctx, a)          // [abbc abc ac]
	ok, path, _ := eng.Match(ctx, "abc", a)   // true, 0 -> 1 -> 1 -> 2

Automata are usually loaded from JSON or YAML documents; see package codec
for the format and the adapters under pkg/adapters for file, memory and
Redis backed stores.
*/
package lingo
