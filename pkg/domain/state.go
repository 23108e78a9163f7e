package domain

// State is a vertex of the automaton.
type State struct {
	// Index is the dense position of the state (0..N-1) in the matrix.
	Index int `json:"index" yaml:"index"`

	// Initial marks the single entry state of the automaton.
	Initial bool `json:"is_initial" yaml:"is_initial"`

	// Terminal marks an accepting state.
	Terminal bool `json:"is_terminal" yaml:"is_terminal"`
}

// NewState creates a state at the given index.
func NewState(index int, initial, terminal bool) State {
	return State{
		Index:    index,
		Initial:  initial,
		Terminal: terminal,
	}
}
