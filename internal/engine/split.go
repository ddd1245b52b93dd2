// Package engine composes the field, diffusion, polynomial, reconstruction,
// and share-codec packages into the two public operations: splitting a
// secret into N shares and combining T shares back into the secret.
package engine

import (
	"math/big"

	"github.com/mrz1836/xsss/internal/diffusion"
	"github.com/mrz1836/xsss/internal/gf"
	"github.com/mrz1836/xsss/internal/poly"
	"github.com/mrz1836/xsss/internal/secure"
	"github.com/mrz1836/xsss/internal/share"
	xerrors "github.com/mrz1836/xsss/pkg/errors"
)

// SplitOptions configures one split operation.
type SplitOptions struct {
	Threshold int
	Shares    int
	Security  int // 0 means infer from secret length
	Diffusion bool
	Hex       bool
	Token     string
	Secret    []byte
}

// SplitResult carries the outcome of a split call, including any
// non-fatal warnings the caller should relay to the user.
type SplitResult struct {
	Lines    []string
	Degree   int
	Warnings []string
}

// Split validates opts, builds the field context, diffuses the secret if
// requested, draws random coefficients, and emits one formatted share line
// per index 1..Shares.
func Split(opts SplitOptions) (*SplitResult, error) {
	if opts.Threshold < 2 {
		return nil, xerrors.WithDetails(xerrors.ErrInvalidParameter, map[string]string{"reason": "threshold must be >= 2"})
	}
	if opts.Shares < opts.Threshold {
		return nil, xerrors.WithDetails(xerrors.ErrInvalidParameter, map[string]string{"reason": "shares must be >= threshold"})
	}
	if len(opts.Token) > share.MaxTokenLen {
		return nil, xerrors.WithDetails(xerrors.ErrInvalidParameter, map[string]string{"reason": "token too long"})
	}
	if opts.Security != 0 && !gf.ValidDegree(opts.Security) {
		return nil, xerrors.WithDetails(xerrors.ErrInvalidParameter, map[string]string{"reason": "invalid security level"})
	}
	if len(opts.Secret) == 0 {
		return nil, xerrors.WithDetails(xerrors.ErrInvalidParameter, map[string]string{"reason": "empty secret"})
	}

	var warnings []string

	deg := opts.Security
	if deg == 0 {
		deg = inferDegree(opts.Secret, opts.Hex)
		if !gf.ValidDegree(deg) {
			return nil, xerrors.WithDetails(xerrors.ErrInvalidParameter, map[string]string{"reason": "security level invalid (secret too long?)"})
		}
	}

	ctx, err := gf.NewContext(deg)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.ErrInvalidParameter, "%v", err)
	}

	coeff0, warn, err := ctx.Import(string(opts.Secret), opts.Hex)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.ErrInputTooLong, "%v", err)
	}
	if warn != "" {
		warnings = append(warnings, warn)
	}

	if opts.Diffusion {
		if deg >= diffusion.MinDegree {
			coeff0 = diffusion.Encode(ctx, coeff0)
		} else {
			warnings = append(warnings, "security level too small for the diffusion layer")
		}
	}

	coeff := make([]*big.Int, opts.Threshold)
	coeff[0] = coeff0
	for i := 1; i < opts.Threshold; i++ {
		c, cerr := drawCoefficient(ctx)
		if cerr != nil {
			return nil, xerrors.Wrap(xerrors.ErrPRNGFailure, "%v", cerr)
		}
		coeff[i] = c
	}

	width := share.DecimalWidth(opts.Shares)
	lines := make([]string, opts.Shares)
	for i := 1; i <= opts.Shares; i++ {
		y := poly.Evaluate(ctx, coeff, big.NewInt(int64(i)))
		yhex, _ := ctx.Print(y, true)
		line, ferr := share.Format(opts.Token, i, width, yhex)
		if ferr != nil {
			return nil, xerrors.Wrap(xerrors.ErrInvalidParameter, "%v", ferr)
		}
		lines[i-1] = line
	}

	return &SplitResult{Lines: lines, Degree: deg, Warnings: warnings}, nil
}

// inferDegree mirrors the original ssss.c's implicit security-level rule:
// hex secrets round their digit count up to an even number before scaling,
// text secrets scale byte-for-byte.
func inferDegree(secret []byte, hex bool) int {
	n := len(secret)
	if hex {
		return 4 * ((n + 1) &^ 1)
	}
	return 8 * n
}

// drawCoefficient reads degree/8 bytes from the CSPRNG and interprets them
// big-endian as a field element, mirroring cprng_read.
func drawCoefficient(ctx *gf.Context) (*big.Int, error) {
	buf, err := secure.RandomBytes(ctx.DegreeBytes())
	if err != nil {
		return nil, err
	}
	defer secure.Wipe(buf)
	return new(big.Int).SetBytes(buf), nil
}
