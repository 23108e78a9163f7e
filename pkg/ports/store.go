package ports

import (
	"context"

	"github.com/aretw0/lingo/pkg/domain"
)

// AutomatonStore persists named automata.
type AutomatonStore interface {
	AutomatonLoader

	// Save persists the automaton under name, replacing any previous one.
	Save(ctx context.Context, name string, a *domain.Automaton) error

	// Delete removes the automaton. Deleting a missing name is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the stored names in ascending order.
	List(ctx context.Context) ([]string, error)
}
