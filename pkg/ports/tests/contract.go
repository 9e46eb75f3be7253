package tests

import (
	"testing"

	"github.com/aretw0/isaw/pkg/ports"
)

// DictionaryContractTest is a reusable test suite that verifies if an adapter complies with ports.Dictionary.
// The dictionary must have been loaded with exactly the given words.
func DictionaryContractTest(t *testing.T, dict ports.Dictionary, words []string) {
	t.Helper()

	t.Run("Contains_Known", func(t *testing.T) {
		for _, w := range words {
			if !dict.Contains(w) {
				t.Errorf("expected %q to be found", w)
			}
		}
	})

	t.Run("Contains_Unknown", func(t *testing.T) {
		for _, w := range []string{"", "zzzzqx", "non-existent-word"} {
			if dict.Contains(w) {
				t.Errorf("expected %q to be missing", w)
			}
		}
	})

	t.Run("Contains_Prefix", func(t *testing.T) {
		// A proper prefix of a word is not a word unless it was loaded.
		loaded := make(map[string]bool, len(words))
		for _, w := range words {
			loaded[w] = true
		}
		for _, w := range words {
			r := []rune(w)
			if len(r) < 2 {
				continue
			}
			prefix := string(r[:len(r)-1])
			if !loaded[prefix] && dict.Contains(prefix) {
				t.Errorf("prefix %q of %q should not be found", prefix, w)
			}
		}
	})

	t.Run("Len", func(t *testing.T) {
		sized, ok := dict.(ports.SizedDictionary)
		if !ok {
			t.Skip("dictionary does not report its size")
		}
		unique := make(map[string]bool)
		for _, w := range words {
			unique[w] = true
		}
		if sized.Len() != len(unique) {
			t.Errorf("expected %d words, got %d", len(unique), sized.Len())
		}
	})
}
