package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/lingo/pkg/domain"
)

// extensions are tried in order when resolving a stored name.
var extensions = []string{".json", ".yaml", ".yml"}

// Store implements ports.AutomatonStore using the local filesystem.
// Each automaton is a document named <name>.json (or .yaml/.yml) in BasePath.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".lingo/automata".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".lingo", "automata")
	}
	return &Store{BasePath: basePath}
}

// Save persists the automaton as JSON, atomically.
func (s *Store) Save(ctx context.Context, name string, a *domain.Automaton) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure automata directory: %w", err)
	}

	if err := SaveFile(filepath.Join(s.BasePath, name+".json"), name, a); err != nil {
		return err
	}

	// The JSON document is in place; drop any YAML twin so Load cannot
	// resolve a stale definition.
	for _, ext := range extensions[1:] {
		if err := os.Remove(filepath.Join(s.BasePath, name+ext)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove stale document: %w", err)
		}
	}
	return nil
}

// Load retrieves the automaton stored under name.
func (s *Store) Load(ctx context.Context, name string) (*domain.Automaton, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	for _, ext := range extensions {
		a, _, err := LoadFile(filepath.Join(s.BasePath, name+ext))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		return a, err
	}
	return nil, domain.ErrAutomatonNotFound
}

// Delete removes every document stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	for _, ext := range extensions {
		err := os.Remove(filepath.Join(s.BasePath, name+ext))
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete automaton file: %w", err)
		}
	}
	return nil
}

// List returns all stored names in ascending order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list automata: %w", err)
	}

	seen := make(map[string]bool)
	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), "tmp-") {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if !isDocumentExt(ext) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func isDocumentExt(ext string) bool {
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid automaton name %q", name)
	}
	return nil
}
