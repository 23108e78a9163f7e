package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteDocument writes content to name inside dir and returns the full path.
// It fails the test immediately on error.
func WriteDocument(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "Failed to create document directory")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write document")
	return path
}

// TwoStateJSON accepts a followed by any number of b.
const TwoStateJSON = `{
  "states": [
    {"index": 0, "is_initial": true, "is_terminal": false},
    {"index": 1, "is_initial": false, "is_terminal": true}
  ],
  "matrix": [
    [{"character": "0"}, {"character": "a"}],
    [{"character": "0"}, {"character": "b"}]
  ]
}`
