package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/aretw0/isaw/pkg/adapters/file"
	"github.com/aretw0/isaw/pkg/domain"
)

// DefaultDictionaryPath is tried by the words command when no dictionary is configured.
const DefaultDictionaryPath = "/usr/share/dict/words"

// ErrInterrupted is returned when a command is cancelled before generation finished.
var ErrInterrupted = errors.New("interrupted")

// GenerateOptions contains the flags of the generating commands.
type GenerateOptions struct {
	Letters    string
	Min        int
	Max        int
	RangeSet   bool // --min or --max was given
	Length     int  // exact-length filter
	LengthSet  bool
	Search     string
	Regex      bool
	IgnoreCase bool
	Unique     bool
	Limit      int
	LimitSet   bool
	Dictionary string
}

func (o GenerateOptions) filter() domain.FilterConfig {
	f := domain.FilterConfig{
		IgnoreCase:  o.IgnoreCase,
		Unique:      o.Unique,
		ExactLength: o.Length,
	}
	if o.Search != "" {
		f.Pattern = &domain.PatternSpec{Text: o.Search, IsRegex: o.Regex}
	}
	return f
}

func (o GenerateOptions) lengthRange() domain.LengthRange {
	return domain.LengthRange{Min: o.Min, Max: o.Max}
}

func (a *App) limit(o GenerateOptions) int {
	if o.LimitSet {
		return o.Limit
	}
	return a.Config.Limit
}

// Permutations prints every ordered arrangement of the letters.
func (a *App) Permutations(ctx context.Context, o GenerateOptions) error {
	if err := o.sanitize(); err != nil {
		return err
	}

	f := o.filter()
	stream, err := a.Engine.GeneratePermutations(o.Letters, o.lengthRange(), a.limit(o), f)
	if err != nil {
		return err
	}

	r := o.lengthRange().Resolve(utf8.RuneCountInString(o.Letters))
	a.printer.Header("Generating permutations of '%s' (length %d to %d)", o.Letters, r.Min, r.Max)
	return a.report(ctx, stream, f, "permutations")
}

// Combinations prints every unordered selection of the letters.
// Without --min/--max the exact --length selects a single size.
func (a *App) Combinations(ctx context.Context, o GenerateOptions) error {
	if err := o.sanitize(); err != nil {
		return err
	}

	r := domain.Exact(o.Length)
	if o.RangeSet {
		r = o.lengthRange()
		if !o.LengthSet {
			o.Length = 0
		}
	} else {
		o.Length = 0
	}

	f := o.filter()
	stream, err := a.Engine.GenerateCombinations(o.Letters, r, a.limit(o), f)
	if err != nil {
		return err
	}

	r = r.Resolve(utf8.RuneCountInString(o.Letters))
	if r.Min == r.Max {
		a.printer.Header("Generating combinations of '%s' (length %d)", o.Letters, r.Min)
	} else {
		a.printer.Header("Generating combinations of '%s' (length %d to %d)", o.Letters, r.Min, r.Max)
	}
	return a.report(ctx, stream, f, "combinations")
}

// Words prints permutations found in the dictionary.
func (a *App) Words(ctx context.Context, o GenerateOptions) error {
	if err := o.sanitize(); err != nil {
		return err
	}

	n := utf8.RuneCountInString(o.Letters)
	if n == 0 {
		return domain.ErrEmptyAlphabet
	}
	r := o.lengthRange().Resolve(n)
	if err := r.Validate(n); err != nil {
		return err
	}

	path, err := a.dictionaryPath(o)
	if err != nil {
		return err
	}
	dict, err := file.Load(path, file.Options{Fold: o.IgnoreCase, MinLength: r.Min, MaxLength: r.Max})
	if err != nil {
		return err
	}
	a.Logger.Info("Dictionary Loaded", "path", path, "words", dict.Len())

	f := o.filter()
	stream, err := a.Engine.GenerateWords(o.Letters, r, dict, a.limit(o), f)
	if err != nil {
		return err
	}

	a.printer.Header("Generating words from '%s' (length %d to %d)", o.Letters, r.Min, r.Max)
	a.printer.Note("Using dictionary: %s", path)
	return a.report(ctx, stream, f, "candidates")
}

// Search prints sequences with repetition that contain pattern.
func (a *App) Search(ctx context.Context, pattern string, o GenerateOptions) error {
	if o.Length < 1 {
		return &domain.RangeError{Min: o.Length, Max: o.Length, Reason: "length must be at least 1"}
	}

	o.Search = pattern
	if o.Letters == "" {
		o.Letters = a.Config.Letters
	}
	if err := o.sanitize(); err != nil {
		return err
	}
	letters := o.Letters
	if letters == "" {
		letters = domain.DefaultSearchAlphabet
	}

	f := o.filter()
	// The length flag selects the size of the sequences here, not a filter.
	f.ExactLength = 0

	stream, err := a.Engine.Search(letters, domain.Exact(o.Length), a.limit(o), f)
	if err != nil {
		return err
	}

	a.printer.Header("Searching for '%s' in %d-letter sequences", o.Search, o.Length)
	a.printer.Note("   Using alphabet: %s", letters)
	return a.report(ctx, stream, f, "sequences")
}

func (a *App) dictionaryPath(o GenerateOptions) (string, error) {
	switch {
	case o.Dictionary != "":
		return o.Dictionary, nil
	case a.Config.Dictionary != "":
		return a.Config.Dictionary, nil
	}

	if _, err := os.Stat(DefaultDictionaryPath); err == nil {
		return DefaultDictionaryPath, nil
	}
	return "", fmt.Errorf("%w: pass --dict or set 'dictionary' in the config file", domain.ErrNoDictionary)
}

// report prints the stream between separators and closes with a summary line.
// Cancelling ctx stops generation, even while every candidate is being rejected.
func (a *App) report(ctx context.Context, stream *domain.ResultStream, f domain.FilterConfig, noun string) error {
	if err := a.printer.Highlight(f.Pattern, f.IgnoreCase); err != nil {
		return err
	}

	a.printer.Separator()
	for word := range stream.AllContext(ctx) {
		a.printer.Line(word)
	}
	a.printer.Separator()

	stats := stream.Stats()
	switch {
	case stream.Mode == domain.ModeWord:
		a.printer.Summary("Found %d words out of %d %s", stats.Emitted, stats.Examined, noun)
	case f.Pattern != nil:
		a.printer.Summary("Found %d matches out of %d %s", stats.Emitted, stats.Examined, noun)
	case stats.Emitted != stats.Examined:
		a.printer.Summary("Generated %d %s (%d examined)", stats.Emitted, noun, stats.Examined)
	default:
		a.printer.Summary("Generated %d %s", stats.Emitted, noun)
	}
	if stats.Capped {
		a.printer.Note("Stopped after %d results (limit reached)", stats.Emitted)
	}

	if stats.Interrupted {
		if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return ErrInterrupted
	}
	return nil
}
