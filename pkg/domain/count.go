package domain

import "math/big"

// CountRow holds the number of arrangements of a single length.
type CountRow struct {
	Length       int
	Permutations *big.Int
	Combinations *big.Int
	Products     *big.Int
}

// CountTable maps each length of a range to its arrangement counts.
// Totals are computed once by NewCountTable and never change afterwards.
type CountTable struct {
	AlphabetSize int
	Range        LengthRange
	Rows         []CountRow

	permutations *big.Int
	combinations *big.Int
	products     *big.Int
}

// NewCountTable sums rows into per-mode grand totals.
func NewCountTable(size int, r LengthRange, rows []CountRow) *CountTable {
	t := &CountTable{
		AlphabetSize: size,
		Range:        r,
		Rows:         rows,
		permutations: new(big.Int),
		combinations: new(big.Int),
		products:     new(big.Int),
	}
	for _, row := range rows {
		t.permutations.Add(t.permutations, row.Permutations)
		t.combinations.Add(t.combinations, row.Combinations)
		t.products.Add(t.products, row.Products)
	}
	return t
}

// Row returns the counts for length k.
func (t *CountTable) Row(k int) (CountRow, bool) {
	for _, row := range t.Rows {
		if row.Length == k {
			return row, true
		}
	}
	return CountRow{}, false
}

// Count returns the count at length k for the given mode.
// Word mode shares the permutation count, since words are filtered permutations.
func (r CountRow) Count(mode Mode) *big.Int {
	switch mode {
	case ModeCombination:
		return r.Combinations
	case ModeProduct:
		return r.Products
	default:
		return r.Permutations
	}
}

// Total returns a copy of the grand total for the given mode.
func (t *CountTable) Total(mode Mode) *big.Int {
	switch mode {
	case ModeCombination:
		return new(big.Int).Set(t.combinations)
	case ModeProduct:
		return new(big.Int).Set(t.products)
	default:
		return new(big.Int).Set(t.permutations)
	}
}

// TotalUint64 narrows the grand total, failing with *OverflowError when it does not fit.
func (t *CountTable) TotalUint64(mode Mode) (uint64, error) {
	v := t.Total(mode)
	if !v.IsUint64() {
		return 0, &OverflowError{Value: v}
	}
	return v.Uint64(), nil
}
