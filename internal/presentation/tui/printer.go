package tui

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/isaw/pkg/domain"
)

const separatorWidth = 50

// Printer writes arrangements and their surrounding report lines.
type Printer struct {
	w      io.Writer
	out    *termenv.Output
	marker *regexp.Regexp
}

// NewPrinter creates a Printer writing to w with the given color profile.
func NewPrinter(w io.Writer, p termenv.Profile) *Printer {
	return &Printer{
		w:   w,
		out: termenv.NewOutput(w, termenv.WithProfile(p)),
	}
}

// Highlight makes Line emphasize the first occurrence of pattern.
// A literal pattern is matched as text; ignoreCase applies to both kinds.
func (p *Printer) Highlight(pattern *domain.PatternSpec, ignoreCase bool) error {
	if pattern == nil || pattern.Text == "" {
		p.marker = nil
		return nil
	}

	expr := pattern.Text
	if !pattern.IsRegex {
		expr = regexp.QuoteMeta(expr)
	}
	if ignoreCase {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return &domain.PatternError{Pattern: pattern.Text, Err: err}
	}
	p.marker = re
	return nil
}

// Header prints a bold cyan title line.
func (p *Printer) Header(format string, args ...any) {
	fmt.Fprintln(p.w, p.out.String(fmt.Sprintf(format, args...)).Foreground(p.out.Color("6")).Bold())
}

// Note prints a faint informational line.
func (p *Printer) Note(format string, args ...any) {
	fmt.Fprintln(p.w, p.out.String(fmt.Sprintf(format, args...)).Faint())
}

// Separator prints a faint horizontal rule.
func (p *Printer) Separator() {
	fmt.Fprintln(p.w, p.out.String(strings.Repeat("─", separatorWidth)).Faint())
}

// Line prints one arrangement, indented, with the match highlighted.
func (p *Printer) Line(word string) {
	fmt.Fprintf(p.w, "  %s\n", p.mark(word))
}

// Summary prints a bold green closing line.
func (p *Printer) Summary(format string, args ...any) {
	fmt.Fprintln(p.w, p.out.String(fmt.Sprintf(format, args...)).Foreground(p.out.Color("2")).Bold())
}

// Raw writes s unchanged.
func (p *Printer) Raw(s string) {
	fmt.Fprint(p.w, s)
}

func (p *Printer) mark(word string) string {
	if p.marker == nil {
		return word
	}

	loc := p.marker.FindStringIndex(word)
	if loc == nil || loc[0] == loc[1] {
		return word
	}

	matched := p.out.String(word[loc[0]:loc[1]]).Foreground(p.out.Color("3")).Bold()
	return word[:loc[0]] + matched.String() + word[loc[1]:]
}
