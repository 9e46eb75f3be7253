package domain

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrEmptyAlphabet is returned when a request is made with zero letters.
var ErrEmptyAlphabet = errors.New("alphabet is empty")

// ErrNoDictionary is returned when words are requested without a dictionary.
var ErrNoDictionary = errors.New("no dictionary configured")

// RangeError reports a length range that cannot be honoured for the alphabet.
type RangeError struct {
	Min    int
	Max    int
	Limit  int // Alphabet length, or 0 when unbounded
	Reason string
}

func (e *RangeError) Error() string {
	if e.Limit > 0 {
		return fmt.Sprintf("invalid length range [%d, %d] for %d letters: %s", e.Min, e.Max, e.Limit, e.Reason)
	}
	return fmt.Sprintf("invalid length range [%d, %d]: %s", e.Min, e.Max, e.Reason)
}

// PatternError wraps a regular expression that failed to compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// OverflowError is returned when a count does not fit the requested native width.
type OverflowError struct {
	Value *big.Int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("count %s overflows uint64", e.Value.String())
}
