package ports

import (
	"context"

	"github.com/aretw0/lingo/pkg/domain"
)

// AutomatonLoader resolves a reference to a validated automaton.
// What a reference means (file path, store key) is up to the adapter.
type AutomatonLoader interface {
	Load(ctx context.Context, ref string) (*domain.Automaton, error)
}
