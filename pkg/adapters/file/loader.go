// Package file loads newline-separated word lists from disk into a dictionary.
package file

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/isaw/pkg/adapters/trie"
)

// Options controls which lines of a word list are kept.
type Options struct {
	// Fold lowercases every word, for use with case-insensitive lookups.
	Fold bool
	// MinLength and MaxLength bound word length in characters. Zero disables a bound.
	MinLength int
	MaxLength int
}

// Load reads the word list at path.
// Blank lines and lines starting with '#' are skipped.
func Load(path string, opts Options) (*trie.Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()

	t, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}
	return t, nil
}

// Read builds a dictionary from r, one word per line.
func Read(r io.Reader, opts Options) (*trie.Trie, error) {
	t := trie.New()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}

		n := utf8.RuneCountInString(word)
		if opts.MinLength > 0 && n < opts.MinLength {
			continue
		}
		if opts.MaxLength > 0 && n > opts.MaxLength {
			continue
		}

		if opts.Fold {
			word = strings.ToLower(word)
		}
		t.Insert(word)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
