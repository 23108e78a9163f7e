package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/lingo/pkg/adapters/redis"
	"github.com/aretw0/lingo/pkg/domain"
	"github.com/aretw0/lingo/pkg/dsl"
	"github.com/aretw0/lingo/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return mr, client
}

func sample() *domain.Automaton {
	b := dsl.New()
	b.Add(0).Initial().On('x', 0).Terminal()
	return b.MustBuild()
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)

	store := redis.NewFromClient(client)
	ports.RunAutomatonStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "short-lived", sample()))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"short-lived"}, names)

	// miniredis expires keys on FastForward; the index prunes by wall clock.
	mr.FastForward(2 * time.Second)
	time.Sleep(1200 * time.Millisecond)

	_, err = store.Load(ctx, "short-lived")
	assert.ErrorIs(t, err, domain.ErrAutomatonNotFound)

	names, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "my-automaton", sample()))

	assert.True(t, mr.Exists("custom:app:doc:my-automaton"))
	assert.True(t, mr.Exists("custom:app:index"))
	assert.False(t, mr.Exists(redis.DefaultPrefix+"index"))
}

func TestRedisStore_NameCannotShadowIndex(t *testing.T) {
	_, client := newClient(t)
	store := redis.NewFromClient(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "index", sample()))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"index"}, names)
}

func TestRedisStore_CorruptDocument(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client)

	require.NoError(t, mr.Set(redis.DefaultPrefix+"doc:broken", `{"states":"nope"}`))

	_, err := store.Load(context.Background(), "broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAutomatonNotFound)
}
