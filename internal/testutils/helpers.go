package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteWordList creates a temporary newline-separated word list and returns its path.
// It fails the test immediately on error.
func WriteWordList(t *testing.T, words ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "words.txt")
	err := os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0644)
	require.NoError(t, err, "Failed to write word list")

	return path
}

// WriteConfig creates a temporary config file with the given name and content.
func WriteConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write config")

	return path
}
