package words

import (
	"testing"

	"github.com/aretw0/isaw/pkg/adapters/memory"
	"github.com/aretw0/isaw/pkg/adapters/trie"
	"github.com/stretchr/testify/assert"
)

type countingDictionary struct {
	calls int
	words map[string]bool
}

func (d *countingDictionary) Contains(word string) bool {
	d.calls++
	return d.words[word]
}

func TestValidator_CaseSensitive(t *testing.T) {
	v := New(memory.NewDictionary("cab", "abc"), false)

	assert.True(t, v.Valid("cab"))
	assert.False(t, v.Valid("Cab"))
	assert.False(t, v.Valid("bca"))
}

func TestValidator_Fold(t *testing.T) {
	v := New(memory.NewDictionary("cab"), true)

	assert.True(t, v.Valid("CaB"))
	assert.True(t, v.Valid("cab"))
}

func TestValidator_OneLookupPerCandidate(t *testing.T) {
	d := &countingDictionary{words: map[string]bool{"ab": true}}
	v := New(d, false)

	v.Valid("ab")
	v.Valid("ba")
	assert.Equal(t, 2, d.calls)
	assert.Len(t, d.words, 1)
}

func TestValidator_Pruner(t *testing.T) {
	assert.Nil(t, New(memory.NewDictionary("cab"), false).Pruner())

	prune := New(trie.New("cab"), false).Pruner()
	assert.True(t, prune("ca"))
	assert.False(t, prune("Ca"))
	assert.False(t, prune("cb"))

	folded := New(trie.New("cab"), true).Pruner()
	assert.True(t, folded("CA"))
	assert.False(t, folded("CB"))
}
