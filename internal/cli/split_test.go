package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCommandRegistersExpectedFlags(t *testing.T) {
	names := []string{"threshold", "shares", "security", "token", "hex", "no-diffusion", "quiet", "QUIET", "require-lock", "version"}
	for _, n := range names {
		assert.NotNil(t, splitCmd.Flags().Lookup(n), "split: missing --%s flag", n)
	}
}

func TestSplitCommandRegisteredOnRoot(t *testing.T) {
	found := false
	for _, c := range rootCmd.Commands() {
		if c.Name() == "split" {
			found = true
		}
	}
	assert.True(t, found)
}
