package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize bounds letters and patterns, in characters.
	DefaultMaxInputSize = 256
	// EnvMaxInputSize is the environment variable to override the default
	EnvMaxInputSize = "ISAW_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// SanitizeInput validates a command-line argument and strips control characters.
// Every character left is a candidate alphabet position or is echoed back to the
// terminal, so escape sequences and newlines are removed.
func SanitizeInput(input string) (string, error) {
	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	limit := getMaxInputSize()
	if n := utf8.RuneCountInString(input); n > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, n, limit)
	}

	// Fast path: if no control chars, return as is.
	if strings.IndexFunc(input, unicode.IsControl) < 0 {
		return input, nil
	}

	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if !unicode.IsControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

func getMaxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}

// sanitize cleans the letters and the search pattern in place.
func (o *GenerateOptions) sanitize() error {
	var err error
	if o.Letters, err = SanitizeInput(o.Letters); err != nil {
		return fmt.Errorf("invalid letters: %w", err)
	}
	if o.Search, err = SanitizeInput(o.Search); err != nil {
		return fmt.Errorf("invalid search pattern: %w", err)
	}
	return nil
}
