/*
Package dsl provides a fluent builder for constructing automata in Go code.

It is an alternative to persisted JSON/YAML documents and is mostly useful for
tests, examples and programmatically generated automata.

Example usage:

	b := dsl.New()

	b.Add(0).Initial().
		On('a', 1, dsl.Capacity(1))

	b.Add(1).
		On('b', 1, dsl.Capacity(2)).
		On('c', 2, dsl.Capacity(1))

	b.Add(2).Terminal()

	a, err := b.Build()
*/
package dsl
