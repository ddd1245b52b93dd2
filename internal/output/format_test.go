package output_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/xsss/internal/output"
)

func TestFormatterPrintText(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatText, &buf)

	require.NoError(t, f.Print("01-abcd"))
	assert.Equal(t, "01-abcd\n", buf.String())
}

func TestFormatterPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatJSON, &buf)

	require.NoError(t, f.Print("01-abcd"))
	assert.JSONEq(t, `"01-abcd"`, buf.String())
}

func TestFormatterIsJSON(t *testing.T) {
	assert.True(t, output.NewFormatter(output.FormatJSON, nil).IsJSON())
	assert.False(t, output.NewFormatter(output.FormatText, nil).IsJSON())
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, output.FormatJSON, output.ParseFormat("JSON"))
	assert.Equal(t, output.FormatText, output.ParseFormat("text"))
	assert.Equal(t, output.FormatAuto, output.ParseFormat("nonsense"))
}

func TestDetectFormatHonorsExplicit(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, output.FormatJSON, output.DetectFormat(&buf, output.FormatJSON))
	assert.Equal(t, output.FormatText, output.DetectFormat(&buf, output.FormatText))
}

func TestDetectFormatDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, output.FormatText, output.DetectFormat(&buf, output.FormatAuto))
}
