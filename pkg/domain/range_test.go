package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLengthRange_Resolve(t *testing.T) {
	tests := []struct {
		name string
		in   LengthRange
		n    int
		want LengthRange
	}{
		{"Unset", LengthRange{}, 4, LengthRange{Min: 1, Max: 4}},
		{"Min Only", LengthRange{Min: 2}, 4, LengthRange{Min: 2, Max: 4}},
		{"Explicit", LengthRange{Min: 2, Max: 3}, 4, LengthRange{Min: 2, Max: 3}},
		{"Exact", Exact(3), 9, LengthRange{Min: 3, Max: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Resolve(tt.n))
		})
	}
}

func TestLengthRange_Validate(t *testing.T) {
	tests := []struct {
		name   string
		r      LengthRange
		limit  int
		reason string
	}{
		{"Valid", LengthRange{Min: 1, Max: 3}, 3, ""},
		{"Unbounded", LengthRange{Min: 2, Max: 40}, 0, ""},
		{"Min Below One", LengthRange{Min: -1, Max: 3}, 3, "min must be at least 1"},
		{"Min Above Max", LengthRange{Min: 3, Max: 2}, 3, "min is greater than max"},
		{"Max Above Limit", LengthRange{Min: 1, Max: 4}, 3, "max exceeds the number of letters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate(tt.limit)
			if tt.reason == "" {
				assert.NoError(t, err)
				return
			}

			var rangeErr *RangeError
			require.True(t, errors.As(err, &rangeErr))
			assert.Equal(t, tt.reason, rangeErr.Reason)
			assert.Equal(t, tt.limit, rangeErr.Limit)
		})
	}
}

func TestLengthRange_Contains(t *testing.T) {
	r := LengthRange{Min: 2, Max: 3}
	assert.False(t, r.Contains(1))
	assert.True(t, r.Contains(2))
	assert.True(t, r.Contains(3))
	assert.False(t, r.Contains(4))
}

func TestRangeError_Message(t *testing.T) {
	err := &RangeError{Min: 4, Max: 3, Limit: 3, Reason: "min is greater than max"}
	assert.Equal(t, "invalid length range [4, 3] for 3 letters: min is greater than max", err.Error())

	err.Limit = 0
	assert.Equal(t, "invalid length range [4, 3]: min is greater than max", err.Error())
}
