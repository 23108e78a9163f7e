package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aretw0/lingo/pkg/adapters/memory"
	"github.com/aretw0/lingo/pkg/domain"
	"github.com/aretw0/lingo/pkg/dsl"
	"github.com/aretw0/lingo/pkg/persistence/middleware"
	"github.com/aretw0/lingo/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore records how many loads reach the backend.
type countingStore struct {
	ports.AutomatonStore
	loads int
}

func (s *countingStore) Load(ctx context.Context, name string) (*domain.Automaton, error) {
	s.loads++
	return s.AutomatonStore.Load(ctx, name)
}

func sample() *domain.Automaton {
	b := dsl.New()
	b.Add(0).Initial().On('a', 0).Terminal()
	return b.MustBuild()
}

func TestCacheMiddleware_Contract(t *testing.T) {
	store := middleware.Chain(memory.NewStore(), middleware.NewCacheMiddleware())
	ports.RunAutomatonStoreContract(t, store)
}

func TestLoggingMiddleware_Contract(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	store := middleware.Chain(memory.NewStore(), middleware.NewLoggingMiddleware(logger))
	ports.RunAutomatonStoreContract(t, store)
}

func TestCacheMiddleware_ReadThrough(t *testing.T) {
	ctx := context.Background()
	backend := &countingStore{AutomatonStore: memory.NewStore()}
	require.NoError(t, backend.Save(ctx, "loop", sample()))

	store := middleware.NewCacheMiddleware()(backend)

	first, err := store.Load(ctx, "loop")
	require.NoError(t, err)
	second, err := store.Load(ctx, "loop")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, backend.loads)

	// Misses are not cached.
	_, err = store.Load(ctx, "absent")
	assert.ErrorIs(t, err, domain.ErrAutomatonNotFound)
	_, err = store.Load(ctx, "absent")
	assert.ErrorIs(t, err, domain.ErrAutomatonNotFound)
	assert.Equal(t, 3, backend.loads)
}

func TestCacheMiddleware_DeleteInvalidates(t *testing.T) {
	ctx := context.Background()
	store := middleware.NewCacheMiddleware()(memory.NewStore())

	require.NoError(t, store.Save(ctx, "loop", sample()))
	_, err := store.Load(ctx, "loop")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "loop"))
	_, err = store.Load(ctx, "loop")
	assert.ErrorIs(t, err, domain.ErrAutomatonNotFound)
}

func TestLoggingMiddleware_Output(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	store := middleware.NewLoggingMiddleware(logger)(memory.NewStore())

	_, err := store.Load(context.Background(), "absent")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "op=load")
	assert.Contains(t, out, "name=absent")
	assert.Contains(t, out, "err=")
}

func TestChain_Order(t *testing.T) {
	var calls []string
	tag := func(label string) middleware.Middleware {
		return func(next ports.AutomatonStore) ports.AutomatonStore {
			return &tracingStore{AutomatonStore: next, label: label, calls: &calls}
		}
	}

	store := middleware.Chain(memory.NewStore(), tag("outer"), tag("inner"))
	_, _ = store.List(context.Background())
	assert.Equal(t, []string{"outer", "inner"}, calls)
}

type tracingStore struct {
	ports.AutomatonStore
	label string
	calls *[]string
}

func (s *tracingStore) List(ctx context.Context) ([]string, error) {
	*s.calls = append(*s.calls, s.label)
	return s.AutomatonStore.List(ctx)
}
