package secure_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/xsss/internal/secure"
)

func TestNewBytesCreation(t *testing.T) {
	t.Parallel()
	sb := secure.NewBytes(32)
	defer sb.Destroy()

	assert.NotNil(t, sb.Bytes())
	assert.Len(t, sb.Bytes(), 32)
}

func TestBytesZeroing(t *testing.T) {
	t.Parallel()
	sb := secure.NewBytes(32)

	data := sb.Bytes()
	for i := range data {
		data[i] = byte(i)
	}
	assert.Equal(t, byte(31), data[31])

	sb.Destroy()
	assert.Nil(t, sb.Bytes())
}

func TestBytesDoubleDestroy(t *testing.T) {
	t.Parallel()
	sb := secure.NewBytes(16)
	sb.Destroy()
	require.NotPanics(t, sb.Destroy)
	assert.Equal(t, 0, sb.Len())
}

func TestFromSliceCopies(t *testing.T) {
	t.Parallel()
	orig := []byte("super secret")
	sb := secure.FromSlice(orig)
	defer sb.Destroy()

	assert.Equal(t, orig, sb.Bytes())

	sb.Bytes()[0] = 'X'
	assert.Equal(t, byte('s'), orig[0], "FromSlice must copy, not alias")
}

func TestRandomBytesLength(t *testing.T) {
	t.Parallel()
	b, err := secure.RandomBytes(64)
	require.NoError(t, err)
	assert.Len(t, b, 64)
}

func TestRandomBytesNotAllZero(t *testing.T) {
	t.Parallel()
	b, err := secure.RandomBytes(64)
	require.NoError(t, err)
	assert.False(t, bytes.Equal(b, make([]byte, 64)))
}

func TestWipe(t *testing.T) {
	t.Parallel()
	data := []byte{1, 2, 3, 4}
	secure.Wipe(data)
	assert.Equal(t, []byte{0, 0, 0, 0}, data)
}
