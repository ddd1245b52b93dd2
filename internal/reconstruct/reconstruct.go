// Package reconstruct recovers the constant term of the secret-sharing
// polynomial from T shares by Gauss-Jordan elimination over GF(2^n).
package reconstruct

import (
	"errors"
	"math/big"

	"github.com/mrz1836/xsss/internal/gf"
)

// ErrSingular is returned when the Vandermonde system built from the given
// shares has no unique solution: duplicate indices, corrupt y-values, or
// shares drawn from different split runs.
var ErrSingular = errors.New("shares inconsistent")

// Secret solves the T x T Vandermonde system whose row k is
// [i_k^(T-1), ..., i_k^1, 1] and whose right-hand side is y_k XOR i_k^T (the
// implicit x^T term from polynomial evaluation subtracted back off), for
// the unknown vector [coeff[T-1], ..., coeff[0]], and returns coeff[0].
//
// indices and ys must be the same length T, the threshold; a row/column
// orientation matching the original algorithm is kept deliberately:
// A[row][col] corresponds to share col's contribution to unknown row.
func Secret(c *gf.Context, indices, ys []*big.Int) (*big.Int, error) {
	t := len(indices)

	a := make([][]*big.Int, t)
	for row := range a {
		a[row] = make([]*big.Int, t)
	}

	for col := 0; col < t; col++ {
		a[t-1][col] = big.NewInt(1)
	}
	for row := t - 2; row >= 0; row-- {
		for col := 0; col < t; col++ {
			a[row][col] = c.Mult(a[row+1][col], indices[col])
		}
	}

	b := make([]*big.Int, t)
	for col := 0; col < t; col++ {
		it := powMod(c, indices[col], t)
		b[col] = c.Add(ys[col], it)
	}

	for i := 0; i < t; i++ {
		if a[i][i].Sign() == 0 {
			pivotCol := -1
			for j := i + 1; j < t; j++ {
				if a[i][j].Sign() != 0 {
					pivotCol = j
					break
				}
			}
			if pivotCol == -1 {
				return nil, ErrSingular
			}
			for row := i; row < t; row++ {
				a[row][i], a[row][pivotCol] = a[row][pivotCol], a[row][i]
			}
			b[i], b[pivotCol] = b[pivotCol], b[i]
		}

		pivot := a[i][i]
		for j := i + 1; j < t; j++ {
			if a[i][j].Sign() == 0 {
				continue
			}
			factor := a[i][j]
			for k := i + 1; k < t; k++ {
				left := c.Mult(a[k][j], pivot)
				right := c.Mult(a[k][i], factor)
				a[k][j] = c.Add(left, right)
			}
			left := c.Mult(b[j], pivot)
			right := c.Mult(b[i], factor)
			b[j] = c.Add(left, right)
		}
	}

	if a[t-1][t-1].Sign() == 0 {
		return nil, ErrSingular
	}

	inv, err := c.Invert(a[t-1][t-1])
	if err != nil {
		return nil, ErrSingular
	}

	return c.Mult(b[t-1], inv), nil
}

// powMod computes x^n within the field by repeated multiplication.
func powMod(c *gf.Context, x *big.Int, n int) *big.Int {
	result := big.NewInt(1)
	for i := 0; i < n; i++ {
		result = c.Mult(result, x)
	}
	return result
}
