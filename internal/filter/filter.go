// Package filter implements the predicate chain applied to every generated arrangement.
package filter

import (
	"iter"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/isaw/pkg/domain"
)

// Check is an extra acceptance test appended after the built-in stages.
type Check struct {
	Stage  domain.Stage
	Accept func(candidate string) bool
}

// Pipeline applies, in order: case folding, pattern match, exact length, extra
// checks and deduplication. It stops at the first stage that rejects a candidate.
//
// A Pipeline holds the dedup set of one invocation and must not be shared.
type Pipeline struct {
	cfg     domain.FilterConfig
	literal string
	re      *regexp.Regexp
	checks  []Check
	seen    map[string]struct{}
}

// New compiles cfg. A malformed regular expression fails here with *domain.PatternError,
// before any candidate is examined.
func New(cfg domain.FilterConfig) (*Pipeline, error) {
	p := &Pipeline{cfg: cfg}

	if cfg.Pattern != nil {
		if cfg.Pattern.IsRegex {
			expr := cfg.Pattern.Text
			if cfg.IgnoreCase {
				expr = "(?i)" + expr
			}
			re, err := regexp.Compile(expr)
			if err != nil {
				return nil, &domain.PatternError{Pattern: cfg.Pattern.Text, Err: err}
			}
			p.re = re
		} else {
			p.literal = p.fold(cfg.Pattern.Text)
		}
	}

	if cfg.Unique {
		p.seen = make(map[string]struct{})
	}

	return p, nil
}

// Then registers an extra check evaluated after the exact-length stage.
func (p *Pipeline) Then(stage domain.Stage, accept func(string) bool) *Pipeline {
	p.checks = append(p.checks, Check{Stage: stage, Accept: accept})
	return p
}

// Config returns the configuration the pipeline was built from.
func (p *Pipeline) Config() domain.FilterConfig {
	return p.cfg
}

// Accept runs candidate through every stage. On rejection it names the stage responsible.
// Accepted candidates are recorded in the dedup set when uniqueness is enabled.
func (p *Pipeline) Accept(candidate string) (bool, domain.Stage) {
	if !p.matches(candidate) {
		return false, domain.StagePattern
	}

	if p.cfg.ExactLength > 0 && utf8.RuneCountInString(candidate) != p.cfg.ExactLength {
		return false, domain.StageLength
	}

	var key string
	if p.seen != nil {
		key = p.fold(candidate)
		if _, dup := p.seen[key]; dup {
			return false, domain.StageUnique
		}
	}

	for _, c := range p.checks {
		if !c.Accept(candidate) {
			return false, c.Stage
		}
	}

	if p.seen != nil {
		p.seen[key] = struct{}{}
	}
	return true, domain.StageNone
}

// Apply filters seq lazily.
func (p *Pipeline) Apply(seq iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for candidate := range seq {
			if ok, _ := p.Accept(candidate); !ok {
				continue
			}
			if !yield(candidate) {
				return
			}
		}
	}
}

func (p *Pipeline) matches(candidate string) bool {
	switch {
	case p.re != nil:
		return p.re.MatchString(candidate)
	case p.cfg.Pattern != nil:
		return strings.Contains(p.fold(candidate), p.literal)
	default:
		return true
	}
}

func (p *Pipeline) fold(s string) string {
	if p.cfg.IgnoreCase {
		return strings.ToLower(s)
	}
	return s
}
