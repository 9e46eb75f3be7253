// Package trie provides a prefix-tree dictionary keyed by runes.
package trie

type node struct {
	children map[rune]*node
	word     bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie implements ports.Dictionary. It is built once and then only read.
type Trie struct {
	root  *node
	count int
}

// New creates a Trie holding the given words.
func New(words ...string) *Trie {
	t := &Trie{root: newNode()}
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// Insert adds word to the trie. Empty strings are ignored.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}

	nodeRef := t.root
	for _, r := range word {
		if nodeRef.children[r] == nil {
			nodeRef.children[r] = newNode()
		}
		nodeRef = nodeRef.children[r]
	}

	if !nodeRef.word {
		nodeRef.word = true
		t.count++
	}
}

// Contains reports whether word was inserted.
func (t *Trie) Contains(word string) bool {
	nodeRef := t.walk(word)
	return nodeRef != nil && nodeRef.word
}

// HasPrefix reports whether any inserted word starts with prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	return t.walk(prefix) != nil
}

// Len returns the number of distinct words.
func (t *Trie) Len() int {
	return t.count
}

func (t *Trie) walk(s string) *node {
	nodeRef := t.root
	for _, r := range s {
		nodeRef = nodeRef.children[r]
		if nodeRef == nil {
			return nil
		}
	}
	return nodeRef
}
