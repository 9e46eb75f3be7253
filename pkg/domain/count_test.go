package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(k int, p, c, x int64) CountRow {
	return CountRow{Length: k, Permutations: big.NewInt(p), Combinations: big.NewInt(c), Products: big.NewInt(x)}
}

func TestCountTable_Totals(t *testing.T) {
	table := NewCountTable(3, LengthRange{Min: 1, Max: 3}, []CountRow{
		row(1, 3, 3, 3),
		row(2, 6, 3, 9),
		row(3, 6, 1, 27),
	})

	assert.Equal(t, "15", table.Total(ModePermutation).String())
	assert.Equal(t, "15", table.Total(ModeWord).String())
	assert.Equal(t, "7", table.Total(ModeCombination).String())
	assert.Equal(t, "39", table.Total(ModeProduct).String())

	r, ok := table.Row(2)
	require.True(t, ok)
	assert.Equal(t, "6", r.Count(ModePermutation).String())
	assert.Equal(t, "3", r.Count(ModeCombination).String())
	assert.Equal(t, "9", r.Count(ModeProduct).String())

	_, ok = table.Row(4)
	assert.False(t, ok)
}

func TestCountTable_TotalIsACopy(t *testing.T) {
	table := NewCountTable(2, LengthRange{Min: 1, Max: 1}, []CountRow{row(1, 2, 2, 2)})

	table.Total(ModePermutation).SetInt64(99)
	assert.Equal(t, "2", table.Total(ModePermutation).String())
}

func TestCountTable_TotalUint64(t *testing.T) {
	table := NewCountTable(2, LengthRange{Min: 1, Max: 1}, []CountRow{row(1, 2, 2, 2)})
	v, err := table.TotalUint64(ModeCombination)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), v)

	huge := new(big.Int).Lsh(big.NewInt(1), 70)
	table = NewCountTable(30, LengthRange{Min: 30, Max: 30}, []CountRow{
		{Length: 30, Permutations: huge, Combinations: big.NewInt(1), Products: huge},
	})

	_, err = table.TotalUint64(ModePermutation)
	var overflow *OverflowError
	require.ErrorAs(t, err, &overflow)
	assert.Equal(t, huge.String(), overflow.Value.String())
	assert.Contains(t, err.Error(), "overflows uint64")
}
