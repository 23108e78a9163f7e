package explore_test

import (
	"github.com/aretw0/lingo/pkg/domain"
	"github.com/aretw0/lingo/pkg/dsl"
)

// scenarioA accepts a b{0,2} c under capacities: {ac, abc, abbc}.
func scenarioA() *domain.Automaton {
	b := dsl.New()
	b.Add(0).Initial().On('a', 1, dsl.Capacity(1))
	b.Add(1).On('b', 1, dsl.Capacity(2)).On('c', 2, dsl.Capacity(1))
	b.Add(2).Terminal()
	return b.MustBuild()
}

// scenarioB accepts {abc, ad}.
func scenarioB() *domain.Automaton {
	b := dsl.New()
	b.Add(0).Initial().On('a', 1)
	b.Add(1).On('b', 2).On('d', 4)
	b.Add(2).On('c', 3)
	b.Add(3).Terminal()
	b.Add(4).Terminal()
	return b.MustBuild()
}

// nondeterministic has two 'a' edges out of the initial state; only the second
// one leads to acceptance of "ab".
func nondeterministic() *domain.Automaton {
	b := dsl.New()
	b.Add(0).Initial().On('a', 1).On('a', 2)
	b.Add(1).On('c', 3)
	b.Add(2).On('b', 3)
	b.Add(3).Terminal()
	return b.MustBuild()
}

// loops is a terminal initial state with self-loops on 'x' and 'y'.
func loops() *domain.Automaton {
	b := dsl.New()
	b.Add(0).Initial().Terminal().On('x', 0)
	b.Add(1).On('y', 0)
	b.Add(0).On('y', 1)
	return b.MustBuild()
}
