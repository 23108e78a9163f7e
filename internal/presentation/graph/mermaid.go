package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/lingo/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of the automaton.
// Shapes:
// - Terminal: (("Double Circle"))
// - Default: ("Rounded")
// An invisible start node points at the initial state. Overlay styles are
// applied when o is non-nil.
func GenerateMermaid(a *domain.Automaton, o *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	if a.HasInitial() {
		sb.WriteString("    start[ ]:::hidden\n")
		sb.WriteString(fmt.Sprintf("    start --> %s\n", stateID(a.Initial())))
	}

	for _, s := range a.States() {
		opener, closer := "(", ")"
		if s.Terminal {
			opener, closer = "((", "))"
		}
		id := stateID(s.Index)
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, id, closer))
	}

	for _, e := range a.Edges() {
		label := strings.ReplaceAll(edgeLabel(e), "\"", "#quot;")
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", stateID(e.From), label, stateID(e.To)))
	}

	if a.HasInitial() {
		sb.WriteString("    classDef hidden display:none;\n")
	}

	if o != nil && len(o.Path) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Black text keeps contrast on both light and dark themes.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		current := o.current()
		visited := o.visited()
		for _, s := range a.States() {
			if visited[s.Index] && s.Index != current {
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", stateID(s.Index)))
			}
		}
		if a.InRange(current) {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", stateID(current)))
		}
	}

	return sb.String()
}

// edgeLabel renders a label with its capacity, e.g. "a" or "a/2".
func edgeLabel(e domain.EdgeRef) string {
	if e.Capacity > 0 {
		return fmt.Sprintf("%c/%d", e.Label, e.Capacity)
	}
	return string(e.Label)
}
