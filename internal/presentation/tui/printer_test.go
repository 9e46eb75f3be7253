package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/isaw/pkg/domain"
)

func TestPrinter_PlainProfileHasNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, termenv.Ascii)
	require.NoError(t, p.Highlight(domain.Literal("b"), false))

	p.Header("Generating permutations of '%s'", "abc")
	p.Separator()
	p.Line("abc")
	p.Summary("Generated %d permutations", 15)

	out := buf.String()
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "Generating permutations of 'abc'\n")
	assert.Contains(t, out, "  abc\n")
	assert.Contains(t, out, strings.Repeat("─", separatorWidth))
	assert.Contains(t, out, "Generated 15 permutations")
}

func TestPrinter_HighlightsFirstMatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, termenv.ANSI)
	require.NoError(t, p.Highlight(domain.Literal("B"), true))

	p.Line("abcb")

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "  a\x1b["), "got %q", out)
	assert.True(t, strings.HasSuffix(out, "cb\n"), "got %q", out)
}

func TestPrinter_LiteralIsQuoted(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, termenv.ANSI)
	require.NoError(t, p.Highlight(domain.Literal("."), false))

	p.Line("abc")
	assert.Equal(t, "  abc\n", buf.String())
}

func TestPrinter_InvalidRegex(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, termenv.Ascii)

	var patternErr *domain.PatternError
	assert.ErrorAs(t, p.Highlight(domain.Regex("("), false), &patternErr)
}

func TestProfile(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, termenv.Ascii, Profile("never", &buf))
	assert.Equal(t, termenv.ANSI256, Profile("always", &buf))
	assert.Equal(t, termenv.Ascii, Profile("auto", &buf))
	assert.False(t, IsTerminal(&buf))
	assert.Equal(t, DefaultWidth, Width(&buf))
}
