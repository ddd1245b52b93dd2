package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrz1836/xsss/internal/engine"
	"github.com/mrz1836/xsss/internal/share"
	xerrors "github.com/mrz1836/xsss/pkg/errors"
)

func TestSplitCombineRoundTripText(t *testing.T) {
	result, err := engine.Split(engine.SplitOptions{
		Threshold: 3,
		Shares:    5,
		Security:  128,
		Diffusion: true,
		Hex:       false,
		Secret:    []byte("hello"),
	})
	require.NoError(t, err)
	require.Len(t, result.Lines, 5)

	combined, err := engine.Combine(engine.CombineOptions{
		Threshold: 3,
		Diffusion: true,
		Hex:       false,
		Lines:     result.Lines[:3],
	})
	require.NoError(t, err)
	require.Equal(t, "hello", combined.Secret)
}

func TestSplitCombineAnyThresholdSubset(t *testing.T) {
	result, err := engine.Split(engine.SplitOptions{
		Threshold: 3,
		Shares:    5,
		Security:  128,
		Diffusion: true,
		Secret:    []byte("topsecret"),
	})
	require.NoError(t, err)

	subsets := [][]int{
		{0, 1, 2}, {0, 1, 3}, {0, 1, 4}, {0, 2, 3}, {0, 2, 4},
		{0, 3, 4}, {1, 2, 3}, {1, 2, 4}, {1, 3, 4}, {2, 3, 4},
	}

	for _, subset := range subsets {
		lines := make([]string, 3)
		for i, idx := range subset {
			lines[i] = result.Lines[idx]
		}

		combined, err := engine.Combine(engine.CombineOptions{
			Threshold: 3,
			Diffusion: true,
			Lines:     lines,
		})
		require.NoError(t, err)
		require.Equal(t, "topsecret", combined.Secret, "subset=%v", subset)
	}
}

func TestSplitInfersDegreeFromHexSecret(t *testing.T) {
	result, err := engine.Split(engine.SplitOptions{
		Threshold: 2,
		Shares:    3,
		Diffusion: true,
		Hex:       true,
		Secret:    []byte("abcd"),
	})
	require.NoError(t, err)
	require.Equal(t, 16, result.Degree)
	require.NotEmpty(t, result.Warnings, "diffusion should warn for a field too small to diffuse")

	combined, err := engine.Combine(engine.CombineOptions{
		Threshold: 2,
		Diffusion: true,
		Hex:       true,
		Lines:     result.Lines[:2],
	})
	require.NoError(t, err)
	require.Equal(t, "abcd", combined.Secret)
}

func TestCombineDuplicateShareIsInconsistent(t *testing.T) {
	result, err := engine.Split(engine.SplitOptions{
		Threshold: 3,
		Shares:    5,
		Security:  128,
		Diffusion: true,
		Secret:    []byte("hello"),
	})
	require.NoError(t, err)

	_, err = engine.Combine(engine.CombineOptions{
		Threshold: 3,
		Diffusion: true,
		Lines:     []string{result.Lines[0], result.Lines[0], result.Lines[1]},
	})
	require.ErrorIs(t, err, xerrors.ErrSharesInconsistent)
}

func TestCombineMismatchedShareLengthFails(t *testing.T) {
	_, err := engine.Combine(engine.CombineOptions{
		Threshold: 2,
		Lines:     []string{"01-abcd", "02-abcdef"},
	})
	require.Error(t, err)
}

func TestCombineZeroIndexShareFails(t *testing.T) {
	_, err := engine.Combine(engine.CombineOptions{
		Threshold: 2,
		Lines:     []string{"0-abcd", "02-beef"},
	})
	require.Error(t, err)
}

func TestSplitRejectsThresholdTooSmall(t *testing.T) {
	_, err := engine.Split(engine.SplitOptions{
		Threshold: 1,
		Shares:    3,
		Secret:    []byte("x"),
	})
	require.Error(t, err)
}

func TestSplitRejectsEmptySecret(t *testing.T) {
	_, err := engine.Split(engine.SplitOptions{
		Threshold: 2,
		Shares:    3,
		Secret:    []byte{},
	})
	require.Error(t, err)
}

func TestSplitEmitsSharesWithZeroPaddedIndex(t *testing.T) {
	result, err := engine.Split(engine.SplitOptions{
		Threshold: 2,
		Shares:    12,
		Security:  128,
		Diffusion: true,
		Secret:    []byte("x"),
	})
	require.NoError(t, err)

	sh, err := share.Parse(result.Lines[0])
	require.NoError(t, err)
	require.Equal(t, 1, sh.Index)
	require.Contains(t, result.Lines[0], "01-")
}
