package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrz1836/xsss/internal/secure"
)

func TestTrimNewline(t *testing.T) {
	cases := map[string]string{
		"abc\n":   "abc",
		"abc\r\n": "abc",
		"abc":     "abc",
		"":        "",
		"\n":      "",
	}
	for input, want := range cases {
		assert.Equal(t, want, trimNewline(input))
	}
}

func TestLockOrWarnSucceedsWithoutRequireLock(t *testing.T) {
	data := make([]byte, 16)
	err := lockOrWarn(data, false)
	assert.NoError(t, err)
	secure.Unlock(data)
}
