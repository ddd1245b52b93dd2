// Package gf implements arithmetic in the binary extension fields GF(2^n)
// used by Shamir's Secret Sharing Scheme, for every degree n in
// {8,16,...,1024}. Field elements are represented as *big.Int restricted to
// [0, 2^n); addition is XOR, multiplication and inversion follow the
// classical shift-and-xor / extended-binary-gcd algorithms over the field's
// irreducible polynomial.
//
// Unlike a process-wide C global, the active field lives in a Context value
// that callers construct for the duration of one split or combine operation
// and then discard — there is no package-level mutable state.
package gf

import (
	"errors"
	"fmt"
	"math/big"
)

// Errors returned by field operations.
var (
	// ErrInvalidDegree is returned when a requested field degree is not
	// a multiple of 8 in [MinDegree, MaxDegree].
	ErrInvalidDegree = errors.New("invalid field degree")

	// ErrDivideByZero is returned by Invert when called on the zero element.
	ErrDivideByZero = errors.New("division by zero in GF(2^n)")

	// ErrInputTooLong is returned when import text exceeds the field's width.
	ErrInputTooLong = errors.New("input string too long")

	// ErrInvalidSyntax is returned when hex import text is not valid hex.
	ErrInvalidSyntax = errors.New("invalid syntax")
)

// Context holds one active field: its degree and irreducible polynomial.
// Construct with NewContext at the top of a split or combine call; discard
// it (let it fall out of scope) when the call finishes.
type Context struct {
	Degree uint
	poly   *big.Int
}

// NewContext builds the field context for the given degree by looking up
// the three middle exponents of its irreducible polynomial and setting
// x^deg + x^a + x^b + x^c + 1.
func NewContext(deg int) (*Context, error) {
	if !ValidDegree(deg) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDegree, deg)
	}

	row := irredCoeff[deg/8-1]
	poly := new(big.Int)
	poly.SetBit(poly, deg, 1)
	poly.SetBit(poly, int(row[0]), 1)
	poly.SetBit(poly, int(row[1]), 1)
	poly.SetBit(poly, int(row[2]), 1)
	poly.SetBit(poly, 0, 1)

	return &Context{Degree: uint(deg), poly: poly}, nil
}

// DegreeBytes returns deg/8, the byte width of an element.
func (c *Context) DegreeBytes() int {
	return int(c.Degree) / 8
}

// Zero returns the additive identity.
func (c *Context) Zero() *big.Int {
	return new(big.Int)
}

// Add computes x XOR y, the field's addition (and subtraction).
func (c *Context) Add(x, y *big.Int) *big.Int {
	return new(big.Int).Xor(x, y)
}

// Mult computes x*y by classical shift-and-xor reduction modulo the field
// polynomial. It always performs Degree iterations regardless of operand
// value (constant work per bit of y, not a side-channel-safe constant time).
// The result never aliases y.
func (c *Context) Mult(x, y *big.Int) *big.Int {
	z := new(big.Int)
	b := new(big.Int).Set(x)

	if y.Bit(0) == 1 {
		z.Set(b)
	}

	deg := int(c.Degree)
	for i := 1; i < deg; i++ {
		b.Lsh(b, 1)
		if b.Bit(deg) == 1 {
			b.Xor(b, c.poly)
		}
		if y.Bit(i) == 1 {
			z.Xor(z, b)
		}
	}

	return z
}

// Invert computes x^-1 via the almost-inverse extended-GCD variant on
// binary polynomials. x must be nonzero.
func (c *Context) Invert(x *big.Int) (*big.Int, error) {
	if x.Sign() == 0 {
		return nil, ErrDivideByZero
	}

	u := new(big.Int).Set(x)
	v := new(big.Int).Set(c.poly)
	g := new(big.Int)
	z := big.NewInt(1)
	one := big.NewInt(1)
	h := new(big.Int)

	for u.Cmp(one) != 0 {
		i := sizeInBits(u) - sizeInBits(v)
		if i < 0 {
			u, v = v, u
			z, g = g, z
			i = -i
		}
		h.Lsh(v, uint(i))
		u.Xor(u, h)
		h.Lsh(g, uint(i))
		z.Xor(z, h)
	}

	return z, nil
}

// sizeInBits mirrors the mpz_sizeinbits macro from the original C
// implementation: bit length of a nonzero value, 0 for zero.
func sizeInBits(a *big.Int) int {
	if a.Sign() == 0 {
		return 0
	}
	return a.BitLen()
}

// Import parses a field element from caller-supplied text. In hex mode up
// to Degree/4 hex digits are accepted, left-padded with zeros; longer input
// is a fatal ErrInputTooLong, shorter input returns a warning. In text mode
// up to Degree/8 bytes are accepted as a big-endian byte string; bytes
// outside [0x20, 0x7F) produce a "binary data detected" warning.
func (c *Context) Import(s string, hex bool) (*big.Int, string, error) {
	if hex {
		return c.importHex(s)
	}
	return c.importText(s)
}

func (c *Context) importHex(s string) (*big.Int, string, error) {
	maxLen := int(c.Degree) / 4
	if len(s) > maxLen {
		return nil, "", ErrInputTooLong
	}

	warn := ""
	if len(s) < maxLen {
		warn = "input string too short, adding null padding on the left"
	}

	for _, r := range s {
		if !isHexDigit(r) {
			return nil, "", ErrInvalidSyntax
		}
	}

	x := new(big.Int)
	if len(s) > 0 {
		if _, ok := x.SetString(s, 16); !ok {
			return nil, "", ErrInvalidSyntax
		}
	}

	return x, warn, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func (c *Context) importText(s string) (*big.Int, string, error) {
	maxLen := int(c.Degree) / 8
	if len(s) > maxLen {
		return nil, "", ErrInputTooLong
	}

	warn := ""
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] >= 0x7F {
			warn = "binary data detected, use hex mode instead"
			break
		}
	}

	return new(big.Int).SetBytes([]byte(s)), warn, nil
}

// Print renders a field element per the same policy Import reverses. In hex
// mode it zero-pads to Degree/4 digits. In text mode only the element's
// significant big-endian bytes are rendered (leading zero bytes are
// dropped); non-printable bytes render as '.' and a warning is returned if
// any were found.
func (c *Context) Print(x *big.Int, hex bool) (string, string) {
	if hex {
		width := int(c.Degree) / 4
		return fmt.Sprintf("%0*x", width, x), ""
	}

	buf := x.Bytes()

	out := make([]byte, len(buf))
	warn := ""
	for i, b := range buf {
		if b >= 0x20 && b < 0x7F {
			out[i] = b
		} else {
			out[i] = '.'
			warn = "binary data detected, use hex mode instead"
		}
	}

	return string(out), warn
}
