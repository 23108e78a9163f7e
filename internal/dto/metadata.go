package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NoEdgeCharacter is the persisted sentinel for an absent transition.
const NoEdgeCharacter = "0"

// Document is the persisted form of an automaton.
// It uses "mapstructure" tags so JSON and YAML sources decode through the same path.
type Document struct {
	Name   string               `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`
	States []StateRecord        `json:"states" yaml:"states" mapstructure:"states"`
	Matrix [][]TransitionRecord `json:"matrix" yaml:"matrix" mapstructure:"matrix"`
}

// StateRecord is one entry of Document.States.
type StateRecord struct {
	IsTerminal bool `json:"is_terminal" yaml:"is_terminal" mapstructure:"is_terminal"`
	IsInitial  bool `json:"is_initial" yaml:"is_initial" mapstructure:"is_initial"`
	Index      int  `json:"index" yaml:"index" mapstructure:"index"`
}

// TransitionRecord is one cell of Document.Matrix.
// MaxTransit and CurrentTransit belong to the legacy schema; only MaxTransit is
// read (as the edge capacity), CurrentTransit is ignored on load.
type TransitionRecord struct {
	Character      string `json:"character" yaml:"character" mapstructure:"character"`
	MaxTransit     int    `json:"max_transit,omitempty" yaml:"max_transit,omitempty" mapstructure:"max_transit"`
	CurrentTransit int    `json:"current_transit,omitempty" yaml:"current_transit,omitempty" mapstructure:"current_transit"`
}

// IsEdge reports whether the record describes a present transition.
func (t TransitionRecord) IsEdge() bool {
	return t.Character != "" && t.Character != NoEdgeCharacter
}

// UnmarshalJSON accepts a bare number as the character. YAML documents with an
// unquoted digit label reach the typed repository that way.
func (t *TransitionRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		Character      json.RawMessage `json:"character"`
		MaxTransit     int             `json:"max_transit"`
		CurrentTransit int             `json:"current_transit"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*t = TransitionRecord{MaxTransit: raw.MaxTransit, CurrentTransit: raw.CurrentTransit}
	switch c := bytes.TrimSpace(raw.Character); {
	case len(c) == 0 || bytes.Equal(c, []byte("null")):
	case c[0] == '"':
		if err := json.Unmarshal(c, &t.Character); err != nil {
			return err
		}
	default:
		var n json.Number
		if err := json.Unmarshal(c, &n); err != nil {
			return fmt.Errorf("character must be a string or a digit: %w", err)
		}
		t.Character = n.String()
	}
	return nil
}
