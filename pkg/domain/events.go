package domain

// Hooks defines callbacks for engine observability.
// They run synchronously on the goroutine consuming the stream; nil fields are skipped.
type Hooks struct {
	OnCandidate  func(mode Mode, candidate string)
	OnReject     func(mode Mode, stage Stage, candidate string)
	OnEmit       func(mode Mode, arrangement string)
	OnCapReached func(mode Mode, limit int)
}

// Merge returns hooks that call h first and then other.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		OnCandidate: func(m Mode, c string) {
			if h.OnCandidate != nil {
				h.OnCandidate(m, c)
			}
			if other.OnCandidate != nil {
				other.OnCandidate(m, c)
			}
		},
		OnReject: func(m Mode, s Stage, c string) {
			if h.OnReject != nil {
				h.OnReject(m, s, c)
			}
			if other.OnReject != nil {
				other.OnReject(m, s, c)
			}
		},
		OnEmit: func(m Mode, a string) {
			if h.OnEmit != nil {
				h.OnEmit(m, a)
			}
			if other.OnEmit != nil {
				other.OnEmit(m, a)
			}
		},
		OnCapReached: func(m Mode, n int) {
			if h.OnCapReached != nil {
				h.OnCapReached(m, n)
			}
			if other.OnCapReached != nil {
				other.OnCapReached(m, n)
			}
		},
	}
}
