// Package poly evaluates the secret-sharing polynomial over GF(2^n) using
// Horner's method.
package poly

import (
	"math/big"

	"github.com/mrz1836/xsss/internal/gf"
)

// Evaluate computes f(x) = x^T + sum_{k=0}^{T-1} coeff[k]*x^k, where
// T = len(coeff), using Horner's method. The leading x^T term is implicit:
// evaluation starts at y = x rather than y = coeff[T-1], so the fold runs
// T-1 multiply steps (i = T-1 down to 1) before the final constant-term
// addition. Reconstruct
// must subtract this implicit term back off; see internal/reconstruct.
func Evaluate(c *gf.Context, coeff []*big.Int, x *big.Int) *big.Int {
	y := new(big.Int).Set(x)

	for i := len(coeff) - 1; i >= 1; i-- {
		y = c.Mult(c.Add(y, coeff[i]), x)
	}

	return c.Add(y, coeff[0])
}
