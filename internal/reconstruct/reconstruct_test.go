package reconstruct_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrz1836/xsss/internal/gf"
	"github.com/mrz1836/xsss/internal/poly"
	"github.com/mrz1836/xsss/internal/reconstruct"
)

func TestSecretRecoversConstantTerm(t *testing.T) {
	c, err := gf.NewContext(32)
	require.NoError(t, err)

	coeff := []*big.Int{
		big.NewInt(0xCAFEBABE),
		big.NewInt(0x1111),
		big.NewInt(0x2222),
	}

	indices := []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)}
	ys := make([]*big.Int, len(indices))
	for i, idx := range indices {
		ys[i] = poly.Evaluate(c, coeff, idx)
	}

	got, err := reconstruct.Secret(c, indices, ys)
	require.NoError(t, err)
	require.Equal(t, coeff[0], got)
}

func TestSecretAnyThresholdSubsetAgrees(t *testing.T) {
	c, err := gf.NewContext(32)
	require.NoError(t, err)

	coeff := []*big.Int{
		big.NewInt(42),
		big.NewInt(99),
		big.NewInt(7),
	}

	allIdx := []int64{1, 2, 3, 4, 5}
	allY := make(map[int64]*big.Int)
	for _, idx := range allIdx {
		allY[idx] = poly.Evaluate(c, coeff, big.NewInt(idx))
	}

	// Every 3-subset of 5 shares must reconstruct the same secret.
	subsets := [][]int64{
		{1, 2, 3}, {1, 2, 4}, {1, 2, 5}, {1, 3, 4}, {1, 3, 5},
		{1, 4, 5}, {2, 3, 4}, {2, 3, 5}, {2, 4, 5}, {3, 4, 5},
	}

	for _, subset := range subsets {
		indices := make([]*big.Int, len(subset))
		ys := make([]*big.Int, len(subset))
		for i, idx := range subset {
			indices[i] = big.NewInt(idx)
			ys[i] = allY[idx]
		}

		got, err := reconstruct.Secret(c, indices, ys)
		require.NoError(t, err)
		require.Equal(t, coeff[0], got, "subset=%v", subset)
	}
}

func TestSecretDuplicateShareIsSingular(t *testing.T) {
	c, err := gf.NewContext(32)
	require.NoError(t, err)

	coeff := []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)}
	y1 := poly.Evaluate(c, coeff, big.NewInt(1))
	y2 := poly.Evaluate(c, coeff, big.NewInt(2))

	indices := []*big.Int{big.NewInt(1), big.NewInt(1), big.NewInt(2)}
	ys := []*big.Int{y1, y1, y2}

	_, err = reconstruct.Secret(c, indices, ys)
	require.ErrorIs(t, err, reconstruct.ErrSingular)
}
