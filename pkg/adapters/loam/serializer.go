package loam

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/loam/pkg/adapters/fs"
	"github.com/aretw0/loam/pkg/core"
)

// documentSerializer writes the metadata of a vault document as the whole JSON
// file. Loam's default JSON serializer also writes a "content" body, which the
// automaton schema rejects.
type documentSerializer struct {
	parser *fs.JSONSerializer
}

func newDocumentSerializer() *documentSerializer {
	return &documentSerializer{parser: fs.NewJSONSerializer(true)}
}

func (s *documentSerializer) Parse(r io.Reader, metadataKey string) (*core.Document, error) {
	return s.parser.Parse(r, metadataKey)
}

func (s *documentSerializer) Serialize(doc core.Document, _ string) ([]byte, error) {
	data, err := json.MarshalIndent(doc.Metadata, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document %s: %w", doc.ID, err)
	}
	return append(data, '\n'), nil
}
