package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/aretw0/lingo/pkg/domain"
)

// Store implements ports.AutomatonStore in memory.
// Automata are immutable, so they are shared rather than copied.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Automaton
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Automaton),
	}
}

// NewFromAutomata creates a store pre-populated with the given automata.
func NewFromAutomata(automata map[string]*domain.Automaton) *Store {
	s := NewStore()
	for name, a := range automata {
		s.data[name] = a
	}
	return s
}

// Save stores the automaton under name.
func (s *Store) Save(ctx context.Context, name string, a *domain.Automaton) error {
	if name == "" {
		return errors.New("name cannot be empty")
	}
	if a == nil {
		return errors.New("automaton cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = a
	return nil
}

// Load retrieves the automaton from memory.
func (s *Store) Load(ctx context.Context, name string) (*domain.Automaton, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.data[name]
	if !ok {
		return nil, domain.ErrAutomatonNotFound
	}
	return a, nil
}

// Delete removes the automaton.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns stored names in ascending order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	sort.Strings(names) // Deterministic order
	return names, nil
}
