package domain

// LengthRange is a closed interval over arrangement length.
// A zero Min means 1 and a zero Max means the alphabet length.
type LengthRange struct {
	Min int
	Max int
}

// Exact returns the range [k, k].
func Exact(k int) LengthRange {
	return LengthRange{Min: k, Max: k}
}

// Resolve fills unset bounds using the alphabet length n.
func (r LengthRange) Resolve(n int) LengthRange {
	if r.Min == 0 {
		r.Min = 1
	}
	if r.Max == 0 {
		r.Max = n
	}
	return r
}

// Validate checks 1 <= Min <= Max, and Max <= limit when limit is positive.
// Call it on a resolved range.
func (r LengthRange) Validate(limit int) error {
	switch {
	case r.Min < 1:
		return &RangeError{Min: r.Min, Max: r.Max, Limit: limit, Reason: "min must be at least 1"}
	case r.Min > r.Max:
		return &RangeError{Min: r.Min, Max: r.Max, Limit: limit, Reason: "min is greater than max"}
	case limit > 0 && r.Max > limit:
		return &RangeError{Min: r.Min, Max: r.Max, Limit: limit, Reason: "max exceeds the number of letters"}
	}
	return nil
}

// Contains reports whether length k lies within the range.
func (r LengthRange) Contains(k int) bool {
	return k >= r.Min && k <= r.Max
}
