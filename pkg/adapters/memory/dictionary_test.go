package memory_test

import (
	"testing"

	"github.com/aretw0/isaw/pkg/adapters/memory"
	contract "github.com/aretw0/isaw/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
)

func TestDictionary_Contract(t *testing.T) {
	words := []string{"cab", "abc", "bead", "a"}

	contract.DictionaryContractTest(t, memory.NewDictionary(words...), words)
}

func TestDictionary_DuplicatesAndEmpty(t *testing.T) {
	d := memory.NewDictionary("cab", "abc", "cab", "")

	assert.Equal(t, 2, d.Len())
	assert.False(t, d.Contains(""))

	d.Add("bac")
	assert.True(t, d.Contains("bac"))
	assert.Equal(t, 3, d.Len())
}
