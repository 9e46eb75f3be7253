package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	render, err := NewRenderer(DefaultWidth)
	require.NoError(t, err)

	out, err := render("| Length | Permutations |\n|---:|---:|\n| 1 | 3 |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Permutations")
	assert.Contains(t, out, "3")
}
