package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/lingo/pkg/domain"
	"github.com/aretw0/lingo/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunAutomatonStoreContract runs a suite of tests to verify that an AutomatonStore
// implementation adheres to the defined interface contract.
func RunAutomatonStoreContract(t *testing.T, store AutomatonStore) {
	ctx := context.Background()
	name := "contract-" + time.Now().Format("20060102150405")

	sample := func() *domain.Automaton {
		b := dsl.New()
		b.Add(0).Initial().On('a', 1, dsl.Capacity(1))
		b.Add(1).On('b', 1, dsl.Capacity(2)).On('c', 2)
		b.Add(2).Terminal()
		return b.MustBuild()
	}

	t.Run("Save and Load", func(t *testing.T) {
		original := sample()

		err := store.Save(ctx, name, original)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, original.States(), loaded.States())
		assert.Equal(t, original.Matrix(), loaded.Matrix())
	})

	t.Run("Save Replaces", func(t *testing.T) {
		b := dsl.New()
		b.Add(0).Initial().Terminal()
		require.NoError(t, store.Save(ctx, name, b.MustBuild()))

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, 1, loaded.Len())
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, domain.ErrAutomatonNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, name, sample())
		require.NoError(t, err)

		err = store.Delete(ctx, name)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, name)
		assert.ErrorIs(t, err, domain.ErrAutomatonNotFound, "Load after Delete should return ErrAutomatonNotFound")

		assert.NoError(t, store.Delete(ctx, name), "Delete of a missing name is not an error")
	})

	t.Run("List", func(t *testing.T) {
		id1 := name + "-1"
		id2 := name + "-2"
		require.NoError(t, store.Save(ctx, id2, sample()))
		require.NoError(t, store.Save(ctx, id1, sample()))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, id1)
		assert.Contains(t, names, id2)
		assert.IsIncreasing(t, names)
	})

	t.Run("Empty Name", func(t *testing.T) {
		assert.Error(t, store.Save(ctx, "", sample()))
	})
}
