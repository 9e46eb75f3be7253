package memory

// Dictionary implements ports.Dictionary using an in-memory set.
type Dictionary struct {
	words map[string]struct{}
}

// NewDictionary creates a Dictionary holding the given words.
func NewDictionary(words ...string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		d.Add(w)
	}
	return d
}

// Add inserts word. Empty strings are ignored.
func (d *Dictionary) Add(word string) {
	if word == "" {
		return
	}
	d.words[word] = struct{}{}
}

// Contains reports whether word was added.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[word]
	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	return len(d.words)
}
