package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/lingo/pkg/codec"
	"github.com/aretw0/lingo/pkg/domain"
)

// Loader implements ports.AutomatonLoader over file paths.
// The format is chosen by extension; relative references resolve against Dir.
type Loader struct {
	Dir string
}

// NewLoader creates a loader rooted at dir. An empty dir means the working directory.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// Load reads and decodes the automaton at ref.
func (l *Loader) Load(ctx context.Context, ref string) (*domain.Automaton, error) {
	path := ref
	if l.Dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(l.Dir, path)
	}
	a, _, err := LoadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", domain.ErrAutomatonNotFound, ref)
	}
	return a, err
}

// LoadFile reads and decodes a single document, returning the automaton and
// its optional name. Missing files report an error satisfying os.IsNotExist.
func LoadFile(path string) (*domain.Automaton, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	a, name, err := codec.Decode(data, codec.FormatFromPath(path))
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return a, name, nil
}

// SaveFile encodes the automaton by the extension of path and writes it atomically.
// It writes to a temporary file in the same directory, syncs, and renames it over path.
func SaveFile(path, name string, a *domain.Automaton) error {
	data, err := codec.Encode(a, name, codec.FormatFromPath(path))
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	// Same directory keeps the rename on one filesystem.
	tmpFile, err := os.CreateTemp(dir, "tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Windows cannot rename an open file.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
