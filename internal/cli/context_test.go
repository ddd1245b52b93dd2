package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/xsss/internal/config"
	"github.com/mrz1836/xsss/internal/output"
)

func TestNewCommandContext(t *testing.T) {
	c := config.Defaults()
	l := config.NullLogger()
	f := output.NewFormatter(output.FormatText, nil)

	ctx := NewCommandContext(c, l, f)

	assert.Same(t, c, ctx.Cfg)
	assert.Same(t, l, ctx.Log)
	assert.Same(t, f, ctx.Fmt)
}

func TestSetAndGetCmdContext(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.SetContext(context.Background())

	ctx := NewCommandContext(config.Defaults(), config.NullLogger(), output.NewFormatter(output.FormatText, nil))
	SetCmdContext(cmd, ctx)

	got := GetCmdContext(cmd)
	require.NotNil(t, got)
	assert.Same(t, ctx, got)
}

func TestGetCmdContextNilContext(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	assert.Nil(t, GetCmdContext(cmd))
}
