package loam

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/aretw0/lingo/internal/dto"
	"github.com/aretw0/lingo/pkg/codec"
	"github.com/aretw0/lingo/pkg/domain"
	"github.com/aretw0/loam"
)

// extensions are tried in order when resolving a stored name.
var extensions = []string{".json", ".yaml", ".yml"}

// Store implements ports.AutomatonStore over a Loam typed repository.
// The vault is opened on first use; reads from a vault directory that does
// not exist yet see an empty store, and the first Save creates it.
type Store struct {
	root string
	opts []loam.Option

	mu   sync.Mutex
	repo *loam.TypedRepository[dto.Document]
}

// New wraps an existing repository rooted at root.
func New(repo *loam.TypedRepository[dto.Document], root string) *Store {
	return &Store{root: root, repo: repo}
}

// Open returns a store over the gitless vault at path.
// Extra options are applied after the defaults.
func Open(path string, opts ...loam.Option) (*Store, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// Strict mode keeps numbers as json.Number across JSON and YAML sources.
	// Dev safety is off: the CLI writes where it is told even under go run.
	base := []loam.Option{
		loam.WithAutoInit(true),
		loam.WithVersioning(false),
		loam.WithStrict(true),
		loam.WithDevSafety(false),
		loam.WithSerializer(".json", newDocumentSerializer()),
	}
	return &Store{root: absPath, opts: append(base, opts...)}, nil
}

// Root returns the vault directory.
func (s *Store) Root() string {
	return s.root
}

// vault returns the repository, initializing it on first use. When create is
// false and the vault directory is missing, it returns nil without touching disk.
func (s *Store) vault(create bool) (*loam.TypedRepository[dto.Document], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.repo != nil {
		return s.repo, nil
	}
	if _, err := os.Stat(s.root); os.IsNotExist(err) && !create {
		return nil, nil
	}

	repo, err := loam.Init(s.root, s.opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	s.repo = loam.NewTypedRepository[dto.Document](repo)
	return s.repo, nil
}

// Save encodes the automaton and writes it as <name>.json.
// Nothing is touched when the automaton cannot be encoded.
func (s *Store) Save(ctx context.Context, name string, a *domain.Automaton) error {
	if err := validateName(name); err != nil {
		return err
	}
	doc, err := codec.FromAutomaton(a, name)
	if err != nil {
		return err
	}

	repo, err := s.vault(true)
	if err != nil {
		return err
	}
	if err := repo.Save(ctx, &loam.DocumentModel[dto.Document]{ID: name + ".json", Data: *doc}); err != nil {
		return fmt.Errorf("loam save failed for %s: %w", name, err)
	}

	// Drop YAML twins so Load cannot resolve a stale definition.
	for _, ext := range extensions[1:] {
		if err := s.remove(ctx, repo, name+ext); err != nil {
			return err
		}
	}
	return nil
}

// Load retrieves the automaton stored under name.
func (s *Store) Load(ctx context.Context, name string) (*domain.Automaton, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	repo, err := s.vault(false)
	if err != nil {
		return nil, err
	}
	if repo == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrAutomatonNotFound, name)
	}

	for _, ext := range extensions {
		doc, err := repo.Get(ctx, name+ext)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("loam get failed for %s: %w", name, err)
		}
		a, err := codec.ToAutomaton(&doc.Data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", doc.ID, err)
		}
		return a, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrAutomatonNotFound, name)
}

// Delete removes every document stored under name. A missing name is not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	repo, err := s.vault(false)
	if err != nil || repo == nil {
		return err
	}
	for _, ext := range extensions {
		if err := s.remove(ctx, repo, name+ext); err != nil {
			return err
		}
	}
	return nil
}

// List returns the stored names in ascending order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	repo, err := s.vault(false)
	if err != nil {
		return nil, err
	}
	if repo == nil {
		return []string{}, nil
	}

	docs, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]bool, len(docs))
	names := []string{}
	for _, doc := range docs {
		// Cache entries carry the saved ID (with extension) or the
		// reconciled one (without); both map to the same name.
		name := trimExtension(doc.ID)
		if seen[name] || !s.stored(name) {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// remove deletes the document id when it is on disk.
func (s *Store) remove(ctx context.Context, repo *loam.TypedRepository[dto.Document], id string) error {
	if _, err := os.Stat(filepath.Join(s.root, id)); os.IsNotExist(err) {
		return nil
	}
	if err := repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("loam delete failed for %s: %w", id, err)
	}
	return nil
}

// stored reports whether a document with a known extension backs name.
func (s *Store) stored(name string) bool {
	for _, ext := range extensions {
		if _, err := os.Stat(filepath.Join(s.root, name+ext)); err == nil {
			return true
		}
	}
	return false
}

// trimExtension strips a document extension. Other dots belong to the name.
func trimExtension(id string) string {
	ext := filepath.Ext(id)
	for _, e := range extensions {
		if ext == e {
			return strings.TrimSuffix(id, ext)
		}
	}
	return id
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
