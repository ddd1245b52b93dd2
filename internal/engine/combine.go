package engine

import (
	"math/big"

	"github.com/mrz1836/xsss/internal/diffusion"
	"github.com/mrz1836/xsss/internal/gf"
	"github.com/mrz1836/xsss/internal/reconstruct"
	"github.com/mrz1836/xsss/internal/share"
	xerrors "github.com/mrz1836/xsss/pkg/errors"
)

// CombineOptions configures one combine operation.
type CombineOptions struct {
	Threshold int
	Diffusion bool
	Hex       bool
	Lines     []string
}

// CombineResult carries the recovered secret and any warnings.
type CombineResult struct {
	Secret   string
	Degree   int
	Warnings []string
}

// Combine parses Threshold share lines, infers the field degree from the
// first line's yhex length, solves the Vandermonde system for coeff[0],
// reverses diffusion if requested, and renders the recovered secret.
func Combine(opts CombineOptions) (*CombineResult, error) {
	if opts.Threshold < 2 {
		return nil, xerrors.WithDetails(xerrors.ErrInvalidParameter, map[string]string{"reason": "threshold must be >= 2"})
	}
	if len(opts.Lines) != opts.Threshold {
		return nil, xerrors.WithDetails(xerrors.ErrInvalidParameter, map[string]string{"reason": "wrong number of shares"})
	}

	var warnings []string

	parsed := make([]share.Share, opts.Threshold)
	for i, line := range opts.Lines {
		sh, err := share.Parse(line)
		if err != nil {
			return nil, xerrors.Wrap(xerrors.ErrMalformedShare, "%v", err)
		}
		parsed[i] = sh
	}

	deg := 4 * len(parsed[0].YHex)
	if !gf.ValidDegree(deg) {
		return nil, xerrors.WithDetails(xerrors.ErrMalformedShare, map[string]string{"reason": "share has illegal length"})
	}
	for _, sh := range parsed[1:] {
		if 4*len(sh.YHex) != deg {
			return nil, xerrors.WithDetails(xerrors.ErrMalformedShare, map[string]string{"reason": "shares have different security levels"})
		}
	}

	ctx, err := gf.NewContext(deg)
	if err != nil {
		return nil, xerrors.Wrap(xerrors.ErrMalformedShare, "%v", err)
	}

	indices := make([]*big.Int, opts.Threshold)
	ys := make([]*big.Int, opts.Threshold)
	for i, sh := range parsed {
		y, _, ierr := ctx.Import(sh.YHex, true)
		if ierr != nil {
			return nil, xerrors.Wrap(xerrors.ErrMalformedShare, "%v", ierr)
		}
		indices[i] = big.NewInt(int64(sh.Index))
		ys[i] = y
	}

	secretElem, err := reconstruct.Secret(ctx, indices, ys)
	if err != nil {
		return nil, xerrors.ErrSharesInconsistent
	}

	if opts.Diffusion {
		if deg >= diffusion.MinDegree {
			secretElem = diffusion.Decode(ctx, secretElem)
		} else {
			warnings = append(warnings, "security level too small for the diffusion layer")
		}
	}

	rendered, warn := ctx.Print(secretElem, opts.Hex)
	if warn != "" {
		warnings = append(warnings, warn)
	}

	return &CombineResult{Secret: rendered, Degree: deg, Warnings: warnings}, nil
}
