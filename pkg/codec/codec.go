package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/lingo/internal/dto"
	"github.com/aretw0/lingo/pkg/domain"
	"github.com/aretw0/lingo/pkg/schema"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format identifies a serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnencodableLabel is returned when an edge label collides with the persisted
// absent-edge sentinel.
var ErrUnencodableLabel = errors.New("label cannot be persisted")

// ErrInvalidCapacity is returned when a document carries a negative max_transit.
var ErrInvalidCapacity = errors.New("capacity must not be negative")

// FormatFromPath picks the format from a file extension. Defaults to YAML.
func FormatFromPath(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// Decode parses a persisted document and builds the automaton it describes.
// It returns the automaton and the optional document name.
func Decode(data []byte, format Format) (*domain.Automaton, string, error) {
	doc, err := DecodeDocument(data, format)
	if err != nil {
		return nil, "", err
	}
	a, err := ToAutomaton(doc)
	if err != nil {
		return nil, "", err
	}
	return a, doc.Name, nil
}

// DecodeDocument parses and validates a persisted document without building the automaton.
func DecodeDocument(data []byte, format Format) (*dto.Document, error) {
	var raw map[string]any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if raw == nil {
		return nil, fmt.Errorf("empty %s document", format)
	}

	if err := schema.Validate(schema.Automaton(), raw); err != nil {
		return nil, fmt.Errorf("invalid automaton document: %w", err)
	}

	var doc dto.Document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &doc,
		// Unquoted YAML digits decode as ints; the label field wants a string.
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode automaton document: %w", err)
	}

	return &doc, nil
}

// ToAutomaton converts a document into a validated automaton.
func ToAutomaton(doc *dto.Document) (*domain.Automaton, error) {
	states := make([]domain.State, len(doc.States))
	for i, s := range doc.States {
		states[i] = domain.NewState(s.Index, s.IsInitial, s.IsTerminal)
	}

	matrix := make([][]domain.Transition, len(doc.Matrix))
	for i, row := range doc.Matrix {
		matrix[i] = make([]domain.Transition, len(row))
		for j, cell := range row {
			if !cell.IsEdge() {
				matrix[i][j] = domain.NoEdge()
				continue
			}
			if cell.MaxTransit < 0 {
				return nil, fmt.Errorf("%w: edge %d->%d has max_transit %d", ErrInvalidCapacity, i, j, cell.MaxTransit)
			}
			label, _ := utf8.DecodeRuneInString(cell.Character)
			matrix[i][j] = domain.Edge(label).WithCapacity(cell.MaxTransit)
		}
	}

	a, err := domain.New(states, matrix)
	if err != nil {
		return nil, fmt.Errorf("invalid automaton: %w", err)
	}
	return a, nil
}

// FromAutomaton converts an automaton into its persisted document.
// Capacities are kept as max_transit so they survive a round trip.
func FromAutomaton(a *domain.Automaton, name string) (*dto.Document, error) {
	doc := &dto.Document{
		Name:   name,
		States: make([]dto.StateRecord, a.Len()),
		Matrix: make([][]dto.TransitionRecord, a.Len()),
	}
	for i, s := range a.States() {
		doc.States[i] = dto.StateRecord{
			IsTerminal: s.Terminal,
			IsInitial:  s.Initial,
			Index:      s.Index,
		}
	}
	for i := range a.Len() {
		doc.Matrix[i] = make([]dto.TransitionRecord, a.Len())
		for j := range a.Len() {
			t := a.At(i, j)
			if !t.IsEdge() {
				doc.Matrix[i][j] = dto.TransitionRecord{Character: dto.NoEdgeCharacter}
				continue
			}
			label := string(t.Label())
			if label == dto.NoEdgeCharacter {
				return nil, fmt.Errorf("%w: edge %d->%d uses the no-edge sentinel %q", ErrUnencodableLabel, i, j, label)
			}
			doc.Matrix[i][j] = dto.TransitionRecord{Character: label, MaxTransit: t.Capacity()}
		}
	}
	return doc, nil
}

// Encode serializes the automaton in the given format.
func Encode(a *domain.Automaton, name string, format Format) ([]byte, error) {
	doc, err := FromAutomaton(a, name)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
