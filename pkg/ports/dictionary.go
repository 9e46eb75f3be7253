package ports

// Dictionary is the lookup capability consumed by the word validator.
// Implementations are read-only from the engine's point of view.
type Dictionary interface {
	// Contains reports whether word is a known word. Lookups are case-sensitive;
	// callers that fold case are expected to load a folded dictionary.
	Contains(word string) bool
}

// SizedDictionary is implemented by dictionaries that know how many words they hold.
// It is used for logging only.
type SizedDictionary interface {
	Dictionary
	Len() int
}

// PrefixDictionary is implemented by dictionaries that can tell whether any word
// starts with a given prefix. Words mode uses it to skip whole branches of the
// permutation tree.
type PrefixDictionary interface {
	Dictionary
	HasPrefix(prefix string) bool
}
