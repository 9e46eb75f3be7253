// Package counter computes arrangement totals in closed form, without generating anything.
//
// All arithmetic uses math/big so totals stay exact for any alphabet size.
package counter

import (
	"math/big"

	"github.com/aretw0/isaw/pkg/domain"
)

// Permutations returns P(n,k) = n!/(n-k)!, or zero when k > n.
func Permutations(n, k int) *big.Int {
	if k < 0 || k > n {
		return new(big.Int)
	}
	if k == 0 {
		return big.NewInt(1)
	}
	// MulRange computes the falling product (n-k+1) * ... * n directly.
	return new(big.Int).MulRange(int64(n-k+1), int64(n))
}

// Combinations returns C(n,k) = n!/(k!(n-k)!), or zero when k > n.
func Combinations(n, k int) *big.Int {
	if k < 0 || k > n {
		return new(big.Int)
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}

// Products returns n^k, the number of length-k sequences with repetition.
func Products(n, k int) *big.Int {
	if k < 0 || n < 0 {
		return new(big.Int)
	}
	return new(big.Int).Exp(big.NewInt(int64(n)), big.NewInt(int64(k)), nil)
}

// Table builds the CountTable for an alphabet of n letters over r.
// Unset bounds in r default to [1, n].
func Table(n int, r domain.LengthRange) (*domain.CountTable, error) {
	if n <= 0 {
		return nil, domain.ErrEmptyAlphabet
	}

	r = r.Resolve(n)
	if err := r.Validate(n); err != nil {
		return nil, err
	}

	rows := make([]domain.CountRow, 0, r.Max-r.Min+1)
	for k := r.Min; k <= r.Max; k++ {
		rows = append(rows, domain.CountRow{
			Length:       k,
			Permutations: Permutations(n, k),
			Combinations: Combinations(n, k),
			Products:     Products(n, k),
		})
	}

	return domain.NewCountTable(n, r, rows), nil
}
