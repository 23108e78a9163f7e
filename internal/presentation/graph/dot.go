package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/lingo/pkg/domain"
)

// GenerateDOT produces a Graphviz digraph of the automaton.
// Terminal states are double circles; an invisible point node marks the
// initial state. Edges walked by the overlay path are drawn bold.
func GenerateDOT(a *domain.Automaton, name string, o *Overlay) string {
	if name == "" {
		name = "automaton"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("digraph %s {\n", quote(name)))
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle];\n")
	sb.WriteString("\n")

	if a.HasInitial() {
		sb.WriteString("  start [shape=point];\n")
		sb.WriteString(fmt.Sprintf("  start -> %s;\n", quote(stateID(a.Initial()))))
		sb.WriteString("\n")
	}

	visited := o.visited()
	current := o.current()
	for _, s := range a.States() {
		attrs := []string{fmt.Sprintf("label=%s", quote(stateID(s.Index)))}
		if s.Terminal {
			attrs = append(attrs, "shape=doublecircle")
		}
		switch {
		case s.Index == current:
			attrs = append(attrs, "style=filled", `fillcolor="#ffeb3b"`)
		case visited[s.Index]:
			attrs = append(attrs, "style=filled", `fillcolor="#e1f5fe"`)
		}
		sb.WriteString(fmt.Sprintf("  %s [%s];\n", quote(stateID(s.Index)), strings.Join(attrs, ", ")))
	}
	sb.WriteString("\n")

	steps := o.steps()
	for _, e := range a.Edges() {
		attrs := fmt.Sprintf("label=%s", quote(edgeLabel(e)))
		if steps[[2]int{e.From, e.To}] {
			attrs += ", penwidth=2"
		}
		sb.WriteString(fmt.Sprintf("  %s -> %s [%s];\n", quote(stateID(e.From)), quote(stateID(e.To)), attrs))
	}

	sb.WriteString("}\n")
	return sb.String()
}

// quote renders a DOT double-quoted ID.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
