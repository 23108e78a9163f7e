package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/lingo/internal/testutils"
	"github.com/aretw0/lingo/pkg/adapters/file"
	"github.com/aretw0/lingo/pkg/codec"
	"github.com/aretw0/lingo/pkg/domain"
	"github.com/aretw0/lingo/pkg/dsl"
	"github.com/aretw0/lingo/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *domain.Automaton {
	b := dsl.New()
	b.Add(0).Initial().On('a', 1)
	b.Add(1).On('b', 1, dsl.Capacity(2)).Terminal()
	return b.MustBuild()
}

func TestFileStore_Contract(t *testing.T) {
	store := file.New(t.TempDir())
	ports.RunAutomatonStoreContract(t, store)
}

func TestFileStore_DefaultPath(t *testing.T) {
	store := file.New("")
	assert.Equal(t, filepath.Join(".lingo", "automata"), store.BasePath)
}

func TestFileStore_ReadsYAMLDocuments(t *testing.T) {
	dir := t.TempDir()
	doc := `states:
  - {index: 0, is_initial: true, is_terminal: false}
  - {index: 1, is_initial: false, is_terminal: true}
matrix:
  - [{character: 0}, {character: a}]
  - [{character: 0}, {character: 0}]
`
	testutils.WriteDocument(t, dir, "handwritten.yaml", doc)

	store := file.New(dir)
	ctx := context.Background()

	a, err := store.Load(ctx, "handwritten")
	require.NoError(t, err)
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 'a', a.At(0, 1).Label())

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"handwritten"}, names)

	// Saving replaces the YAML twin with the canonical JSON document.
	require.NoError(t, store.Save(ctx, "handwritten", sample()))
	_, err = os.Stat(filepath.Join(dir, "handwritten.yaml"))
	assert.True(t, os.IsNotExist(err))

	names, err = store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"handwritten"}, names)
}

func TestFileStore_FailedSaveKeepsDocument(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteDocument(t, dir, "keep.yaml", `states:
  - {index: 0, is_initial: true, is_terminal: true}
matrix:
  - [{character: 0}]
`)
	store := file.New(dir)
	ctx := context.Background()

	b := dsl.New()
	b.Add(0).Initial().On('0', 1)
	b.Add(1).Terminal()

	err := store.Save(ctx, "keep", b.MustBuild())
	require.ErrorIs(t, err, codec.ErrUnencodableLabel)

	a, err := store.Load(ctx, "keep")
	require.NoError(t, err, "a rejected save must not destroy the stored document")
	assert.Equal(t, 1, a.Len())

	_, err = os.Stat(filepath.Join(dir, "keep.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_RejectsPathNames(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, "../escape", sample()))
	_, err := store.Load(ctx, "a/b")
	assert.Error(t, err)
}

func TestFileStore_NoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	require.NoError(t, store.Save(context.Background(), "clean", sample()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "clean.json", entries[0].Name())
}

func TestLoader_ResolvesRelativeToDir(t *testing.T) {
	dir := t.TempDir()
	original := sample()
	require.NoError(t, file.SaveFile(filepath.Join(dir, "sample.yaml"), "sample", original))

	loader := file.NewLoader(dir)
	loaded, err := loader.Load(context.Background(), "sample.yaml")
	require.NoError(t, err)
	assert.Equal(t, original.Matrix(), loaded.Matrix())

	_, name, err := file.LoadFile(filepath.Join(dir, "sample.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "sample", name)
}

func TestLoader_Missing(t *testing.T) {
	loader := file.NewLoader(t.TempDir())
	_, err := loader.Load(context.Background(), "absent.json")
	assert.ErrorIs(t, err, domain.ErrAutomatonNotFound)
}

func TestLoader_MalformedDocument(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteDocument(t, dir, "bad.json", `{"states": [`)

	_, err := file.NewLoader(dir).Load(context.Background(), "bad.json")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAutomatonNotFound)
}
