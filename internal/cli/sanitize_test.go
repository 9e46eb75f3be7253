package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeInput_SizeLimit(t *testing.T) {
	limit := DefaultMaxInputSize

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Under Limit", strings.Repeat("a", limit-1), false},
		{"Exact Limit", strings.Repeat("a", limit), false},
		{"Exact Limit Multibyte", strings.Repeat("é", limit), false},
		{"Over Limit", strings.Repeat("a", limit+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SanitizeInput(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInputTooLarge)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizeInput_EnvOverride(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "3")

	_, err := SanitizeInput("abcd")
	assert.ErrorIs(t, err, ErrInputTooLarge)

	t.Setenv(EnvMaxInputSize, "not-a-number")
	_, err = SanitizeInput("abcd")
	assert.NoError(t, err)
}

func TestSanitizeInput_ControlChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Normal Text", "abc", "abc"},
		{"Newline And Tab", "ab\nc\t", "abc"},
		{"ANSI Code", "\x1b[31mabc", "[31mabc"},
		{"Null Byte", "a\x00b", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeInput(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitizeInput_InvalidUTF8(t *testing.T) {
	_, err := SanitizeInput("ab\xff")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestApp_RejectsInvalidLetters(t *testing.T) {
	app, out, _ := newTestApp(t, GlobalOptions{})

	err := app.Permutations(context.Background(), GenerateOptions{Letters: "ab\xff"})
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Empty(t, out.String())

	require.NoError(t, app.Combinations(context.Background(), GenerateOptions{Letters: "a\x00bc", Length: 2}))
	assert.Equal(t, []string{"ab", "ac", "bc"}, lines(out.String()))
}
