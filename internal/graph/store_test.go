package graph

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func TestLoadIndentsDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample-graph.json")
	writeFile(t, path, `{"nodes": [], "edges": []}`)

	store := NewStore(path, zap.NewNop())

	doc, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"nodes\": [],\n  \"edges\": []\n}", string(doc))
}

func TestLoadPreservesKeyOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample-graph.json")
	writeFile(t, path, `{"zeta": 1, "alpha": {"b": 2, "a": 3}}`)

	store := NewStore(path, zap.NewNop())

	doc, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"zeta\": 1,\n  \"alpha\": {\n    \"b\": 2,\n    \"a\": 3\n  }\n}", string(doc))
}

func TestLoadPreservesNumericLiterals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample-graph.json")
	writeFile(t, path, `{"id": 9007199254740993}`)

	store := NewStore(path, zap.NewNop())

	doc, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"id\": 9007199254740993\n}", string(doc))
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample-graph.json")

	store := NewStore(path, zap.NewNop())

	_, err := store.Load()
	require.Error(t, err)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, path, notFound.Path)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample-graph.json")
	writeFile(t, path, `{"nodes": [`)

	store := NewStore(path, zap.NewNop())

	_, err := store.Load()
	require.Error(t, err)

	var notFound *NotFoundError
	assert.False(t, errors.As(err, &notFound), "a malformed file is not a missing file")
}

func TestLoadRejectsTrailingData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample-graph.json")
	writeFile(t, path, `{"nodes": []} garbage`)

	store := NewStore(path, zap.NewNop())

	_, err := store.Load()
	require.Error(t, err)
}

func TestLoadReflectsOnDiskEdit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample-graph.json")
	writeFile(t, path, `{"nodes": []}`)

	store := NewStore(path, zap.NewNop())

	doc, err := store.Load()
	require.NoError(t, err)
	assert.NotContains(t, string(doc), "edges")

	writeFile(t, path, `{"nodes": [], "edges": [{"from": "a", "to": "b"}]}`)

	doc, err = store.Load()
	require.NoError(t, err)
	assert.Contains(t, string(doc), "edges")
}
