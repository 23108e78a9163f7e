package schema

// Automaton returns the schema of a persisted automaton document.
//
//	name:   optional label
//	states: [{index, is_initial, is_terminal}]
//	matrix: [[{character, max_transit?, current_transit?}]]
//
// An empty transition object is an absent edge. Transit counters are never negative.
func Automaton() Schema {
	state := Object(Schema{
		"index":       Int(),
		"is_initial":  Bool(),
		"is_terminal": Bool(),
	})
	transition := Object(Schema{
		"character":       Optional(Char()),
		"max_transit":     Optional(Count()),
		"current_transit": Optional(Count()),
	})
	return Schema{
		"name":   Optional(String()),
		"states": Slice(state),
		"matrix": Slice(Slice(transition)),
	}
}
