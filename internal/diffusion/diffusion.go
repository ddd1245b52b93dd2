// Package diffusion implements the wide-block keyless diffusion layer
// applied to the secret (coeff[0]) before it is split, and reversed
// after a secret is reconstructed. It is a bijection on GF(2^deg) built by
// running the XTEA block permutation cyclically over the element's byte
// representation, so that flipping a single output bit of a share, absent
// the diffusion layer, would otherwise only perturb one input bit.
package diffusion

import (
	"math/big"

	"github.com/mrz1836/xsss/internal/gf"
)

// MinDegree is the smallest field degree the diffusion layer supports: it
// operates on 64-bit blocks, so fewer than 64 bits leaves no room to mix.
const MinDegree = 64

// passFactor mirrors the original's comment: 40 half-step passes over the
// buffer are far more than enough to diffuse every bit into every byte.
const passFactor = 40

// wordBufLen returns the byte length of the word-oriented buffer used for
// the mpz_export/mpz_import-equivalent packing: ceil(degree/16) 16-bit
// words, two bytes each.
func wordBufLen(degree int) int {
	return (degree + 8) / 16 * 2
}

// reverseWordBlocks reverses the order of 2-byte blocks in place without
// reversing the bytes within a block. Applied to a standard big-endian byte
// string it produces the least-significant-word-first layout GMP's
// mpz_export/mpz_import use with order=-1, size=2, endian=1; applying it
// again restores the original order, so the same function implements both
// pack and unpack.
func reverseWordBlocks(buf []byte) {
	n := len(buf) / 2
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		buf[2*i], buf[2*i+1], buf[2*j], buf[2*j+1] =
			buf[2*j], buf[2*j+1], buf[2*i], buf[2*i+1]
	}
}

// encodeSlice applies one XTEA block permutation to the 8 bytes of data
// starting at idx, wrapping cyclically within the first length bytes of
// data. This mirrors encode_slice from the original C implementation,
// which treats the buffer as a ring of `length` bytes so that the 40*length
// pass schedule mixes every byte into every other byte.
func encodeSlice(data []byte, idx, length int, block func(*[2]uint32)) {
	var v [2]uint32
	for i := 0; i < 2; i++ {
		v[i] = uint32(data[(idx+4*i)%length])<<24 |
			uint32(data[(idx+4*i+1)%length])<<16 |
			uint32(data[(idx+4*i+2)%length])<<8 |
			uint32(data[(idx+4*i+3)%length])
	}

	block(&v)

	for i := 0; i < 2; i++ {
		data[(idx+4*i+0)%length] = byte(v[i] >> 24)
		data[(idx+4*i+1)%length] = byte(v[i] >> 16)
		data[(idx+4*i+2)%length] = byte(v[i] >> 8)
		data[(idx+4*i+3)%length] = byte(v[i])
	}
}

// Encode applies the diffusion permutation to x, forward direction.
func Encode(c *gf.Context, x *big.Int) *big.Int {
	return transform(c, x, true)
}

// Decode reverses the diffusion permutation applied by Encode. For any
// degree >= MinDegree, Decode(Encode(x)) == x.
func Decode(c *gf.Context, x *big.Int) *big.Int {
	return transform(c, x, false)
}

func transform(c *gf.Context, x *big.Int, forward bool) *big.Int {
	degree := int(c.Degree)
	degreeBytes := degree / 8
	bufLen := wordBufLen(degree)

	stdBE := make([]byte, bufLen)
	x.FillBytes(stdBE)

	v := make([]byte, bufLen)
	copy(v, stdBE)
	reverseWordBlocks(v)

	oddTail := degree%16 == 8
	if oddTail {
		v[degreeBytes-1] = v[degreeBytes]
	}

	if forward {
		for i := 0; i < passFactor*degreeBytes; i += 2 {
			encodeSlice(v, i, degreeBytes, xteaEncipher)
		}
	} else {
		for i := passFactor*degreeBytes - 2; i >= 0; i -= 2 {
			encodeSlice(v, i, degreeBytes, xteaDecipher)
		}
	}

	if oddTail {
		v[degreeBytes] = v[degreeBytes-1]
		v[degreeBytes-1] = 0
	}

	reverseWordBlocks(v)

	return new(big.Int).SetBytes(v)
}
