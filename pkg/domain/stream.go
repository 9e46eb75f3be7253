package domain

import (
	"context"
	"iter"
)

// StreamStats tracks how a ResultStream was consumed.
type StreamStats struct {
	Examined    int  // Candidates produced by the generator
	Emitted     int  // Arrangements that survived every filter
	Capped      bool // Enumeration stopped because the result cap was reached
	Interrupted bool // Enumeration stopped because the context was cancelled
}

// Producer drives an enumeration, calling yield for each arrangement.
// It must return as soon as yield returns false or ctx is done.
type Producer func(ctx context.Context, yield func(string) bool)

// ResultStream is a lazy, finite, forward-only sequence of arrangements.
// It can be traversed once; later traversals yield nothing.
type ResultStream struct {
	Mode    Mode
	produce Producer
	stats   *StreamStats
	used    bool
}

// NewResultStream wraps produce. The producer updates stats while it runs.
func NewResultStream(mode Mode, produce Producer, stats *StreamStats) *ResultStream {
	if stats == nil {
		stats = &StreamStats{}
	}
	return &ResultStream{Mode: mode, produce: produce, stats: stats}
}

// All returns the underlying sequence for use with range.
func (s *ResultStream) All() iter.Seq[string] {
	return s.AllContext(context.Background())
}

// AllContext is like All, but generation stops when ctx is done, even while
// every candidate is being rejected. Stats().Interrupted reports that case.
func (s *ResultStream) AllContext(ctx context.Context) iter.Seq[string] {
	return func(yield func(string) bool) {
		if s.used {
			return
		}
		s.used = true
		s.produce(ctx, yield)
	}
}

// Collect drains the stream into a slice.
func (s *ResultStream) Collect() []string {
	var out []string
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}

// Stats returns a snapshot of the consumption counters.
func (s *ResultStream) Stats() StreamStats {
	return *s.stats
}
