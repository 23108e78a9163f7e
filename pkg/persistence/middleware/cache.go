package middleware

import (
	"context"
	"sync"

	"github.com/aretw0/lingo/pkg/domain"
	"github.com/aretw0/lingo/pkg/ports"
)

type cacheMiddleware struct {
	next  ports.AutomatonStore
	mu    sync.RWMutex
	cache map[string]*domain.Automaton
}

// NewCacheMiddleware keeps loaded automata in memory so repeated references
// to the same name reach the backend once. Writes through this store keep the
// cache coherent; writes made elsewhere are not observed.
func NewCacheMiddleware() Middleware {
	return func(next ports.AutomatonStore) ports.AutomatonStore {
		return &cacheMiddleware{
			next:  next,
			cache: make(map[string]*domain.Automaton),
		}
	}
}

func (m *cacheMiddleware) Save(ctx context.Context, name string, a *domain.Automaton) error {
	if err := m.next.Save(ctx, name, a); err != nil {
		return err
	}
	m.mu.Lock()
	m.cache[name] = a
	m.mu.Unlock()
	return nil
}

func (m *cacheMiddleware) Load(ctx context.Context, name string) (*domain.Automaton, error) {
	m.mu.RLock()
	a, ok := m.cache[name]
	m.mu.RUnlock()
	if ok {
		return a, nil
	}

	a, err := m.next.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.cache[name] = a
	m.mu.Unlock()
	return a, nil
}

func (m *cacheMiddleware) Delete(ctx context.Context, name string) error {
	m.mu.Lock()
	delete(m.cache, name)
	m.mu.Unlock()
	return m.next.Delete(ctx, name)
}

func (m *cacheMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}
