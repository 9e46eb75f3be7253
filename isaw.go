package isaw

import (
	"context"
	"io"
	"iter"
	"log/slog"

	"github.com/aretw0/isaw/internal/counter"
	"github.com/aretw0/isaw/internal/filter"
	"github.com/aretw0/isaw/internal/generator"
	"github.com/aretw0/isaw/internal/words"
	"github.com/aretw0/isaw/pkg/domain"
	"github.com/aretw0/isaw/pkg/ports"
)

// Engine is the high-level entry point for the isaw library.
// It validates requests, wires the generator to the filter pipeline and applies the result cap.
//
// An Engine holds no per-invocation state; every call builds its own pipeline.
type Engine struct {
	dict   ports.Dictionary
	hooks  domain.Hooks
	logger *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithDictionary sets the default dictionary used by GenerateWords.
func WithDictionary(dict ports.Dictionary) Option {
	return func(e *Engine) {
		e.dict = dict
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return eng
}

// GeneratePermutations streams ordered selections of distinct letter positions.
// A limit of zero or less means no cap.
func (e *Engine) GeneratePermutations(alphabet string, r domain.LengthRange, limit int, f domain.FilterConfig) (*domain.ResultStream, error) {
	letters, r, err := prepare(alphabet, r)
	if err != nil {
		return nil, err
	}

	p, err := filter.New(f)
	if err != nil {
		return nil, err
	}

	r, ok := narrow(r, f.ExactLength)
	if !ok {
		return e.stream(domain.ModePermutation, empty, p, limit), nil
	}
	return e.stream(domain.ModePermutation, generator.Permutations(letters, r.Min, r.Max), p, limit), nil
}

// GenerateCombinations streams unordered selections of distinct letter positions,
// each rendered in alphabet order. Use domain.Exact for a single length.
func (e *Engine) GenerateCombinations(alphabet string, r domain.LengthRange, limit int, f domain.FilterConfig) (*domain.ResultStream, error) {
	letters, r, err := prepare(alphabet, r)
	if err != nil {
		return nil, err
	}

	p, err := filter.New(f)
	if err != nil {
		return nil, err
	}

	r, ok := narrow(r, f.ExactLength)
	if !ok {
		return e.stream(domain.ModeCombination, empty, p, limit), nil
	}
	return e.stream(domain.ModeCombination, generator.Combinations(letters, r.Min, r.Max), p, limit), nil
}

// GenerateWords streams permutations that dict recognizes as words.
// A nil dict falls back to the dictionary given to WithDictionary.
func (e *Engine) GenerateWords(alphabet string, r domain.LengthRange, dict ports.Dictionary, limit int, f domain.FilterConfig) (*domain.ResultStream, error) {
	if dict == nil {
		dict = e.dict
	}
	if dict == nil {
		return nil, domain.ErrNoDictionary
	}

	letters, r, err := prepare(alphabet, r)
	if err != nil {
		return nil, err
	}

	p, err := filter.New(f)
	if err != nil {
		return nil, err
	}
	validator := words.New(dict, f.IgnoreCase)
	p.Then(domain.StageDictionary, validator.Valid)

	if sized, ok := dict.(ports.SizedDictionary); ok {
		e.logger.Debug("Dictionary Attached", "words", sized.Len())
	}

	r, ok := narrow(r, f.ExactLength)
	if !ok {
		return e.stream(domain.ModeWord, empty, p, limit), nil
	}
	// Branches that no dictionary word starts with are never generated.
	return e.stream(domain.ModeWord, generator.PermutationsPruned(letters, r.Min, r.Max, validator.Pruner()), p, limit), nil
}

// Search streams every sequence with repetition over alphabet, which defaults to a-z.
// Lengths are not bounded by the alphabet size. An unset range means exactly 3,
// a zero Min means 1 and a zero Max means Min.
func (e *Engine) Search(alphabet string, r domain.LengthRange, limit int, f domain.FilterConfig) (*domain.ResultStream, error) {
	if alphabet == "" {
		alphabet = domain.DefaultSearchAlphabet
	}
	letters := []rune(alphabet)

	if r == (domain.LengthRange{}) {
		r = domain.Exact(3)
	}
	if r.Min == 0 {
		r.Min = 1
	}
	if r.Max == 0 {
		r.Max = r.Min
	}
	if err := r.Validate(0); err != nil {
		return nil, err
	}

	p, err := filter.New(f)
	if err != nil {
		return nil, err
	}

	r, ok := narrow(r, f.ExactLength)
	if !ok {
		return e.stream(domain.ModeProduct, empty, p, limit), nil
	}
	return e.stream(domain.ModeProduct, generator.Products(letters, r.Min, r.Max), p, limit), nil
}

// Count returns closed-form totals for an alphabet of the given size.
func (e *Engine) Count(alphabetSize int, r domain.LengthRange) (*domain.CountTable, error) {
	table, err := counter.Table(alphabetSize, r)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("Counted Arrangements",
		"letters", alphabetSize,
		"min", table.Range.Min,
		"max", table.Range.Max,
		"permutations", table.Total(domain.ModePermutation).String(),
	)
	return table, nil
}

// prepare validates the alphabet and resolves r against it.
func prepare(alphabet string, r domain.LengthRange) ([]rune, domain.LengthRange, error) {
	letters := []rune(alphabet)
	if len(letters) == 0 {
		return nil, r, domain.ErrEmptyAlphabet
	}

	r = r.Resolve(len(letters))
	if err := r.Validate(len(letters)); err != nil {
		return nil, r, err
	}
	return letters, r, nil
}

// narrow intersects r with the exact-length filter, so other lengths are never generated.
// It reports false when the two do not overlap.
func narrow(r domain.LengthRange, exact int) (domain.LengthRange, bool) {
	if exact <= 0 {
		return r, true
	}
	if !r.Contains(exact) {
		return r, false
	}
	return domain.Exact(exact), true
}

func empty(func(string) bool) {}

// stream drives seq through p and stops the whole enumeration once limit results are out
// or the consumer's context is done.
func (e *Engine) stream(mode domain.Mode, seq iter.Seq[string], p *filter.Pipeline, limit int) *domain.ResultStream {
	stats := &domain.StreamStats{}
	logger := e.logger.With("mode", string(mode))
	hooks := e.hooks

	out := func(ctx context.Context, yield func(string) bool) {
		logger.Debug("Generation Started", "limit", limit, "unique", p.Config().Unique)
		defer func() {
			logger.Debug("Generation Finished",
				"examined", stats.Examined,
				"emitted", stats.Emitted,
				"capped", stats.Capped,
				"interrupted", stats.Interrupted,
			)
		}()

		done := ctx.Done()
		for candidate := range seq {
			if done != nil {
				select {
				case <-done:
					stats.Interrupted = true
					return
				default:
				}
			}

			stats.Examined++
			if hooks.OnCandidate != nil {
				hooks.OnCandidate(mode, candidate)
			}

			if ok, stage := p.Accept(candidate); !ok {
				if hooks.OnReject != nil {
					hooks.OnReject(mode, stage, candidate)
				}
				continue
			}

			stats.Emitted++
			if hooks.OnEmit != nil {
				hooks.OnEmit(mode, candidate)
			}
			if !yield(candidate) {
				return
			}

			if limit > 0 && stats.Emitted >= limit {
				stats.Capped = true
				if hooks.OnCapReached != nil {
					hooks.OnCapReached(mode, limit)
				}
				return
			}
		}
	}

	return domain.NewResultStream(mode, out, stats)
}
