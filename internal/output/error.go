package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	xerrors "github.com/mrz1836/xsss/pkg/errors"
)

// ErrorOutput represents a structured error for JSON output.
type ErrorOutput struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error details.
type ErrorDetail struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	Suggestion string            `json:"suggestion,omitempty"`
	ExitCode   int               `json:"exit_code"`
}

// FormatError formats an error for display. Text-mode output follows
// spec.md's wire contract: a line prefixed "FATAL: ", terminated by a
// period and newline.
func FormatError(w io.Writer, err error, format Format) error {
	if err == nil {
		return nil
	}

	if format == FormatJSON {
		return formatErrorJSON(w, err)
	}
	return formatErrorText(w, err)
}

func formatErrorJSON(w io.Writer, err error) error {
	var xe *xerrors.XsssError
	detail := ErrorDetail{Code: "GENERAL_ERROR", Message: err.Error(), ExitCode: xerrors.ExitGeneral}
	if errors.As(err, &xe) {
		detail = ErrorDetail{
			Code:       xe.Code,
			Message:    xe.Message,
			Details:    xe.Details,
			Suggestion: xe.Suggestion,
			ExitCode:   xe.ExitCode,
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ErrorOutput{Error: detail})
}

func formatErrorText(w io.Writer, err error) error {
	var sb strings.Builder

	var xe *xerrors.XsssError
	message := err.Error()
	var details map[string]string
	var suggestion string
	if errors.As(err, &xe) {
		message = xe.Message
		details = xe.Details
		suggestion = xe.Suggestion
	}

	if bellOnStderr(w) {
		sb.WriteByte('\a')
	}
	sb.WriteString(fmt.Sprintf("FATAL: %s.\n", message))

	if len(details) > 0 {
		for k, v := range details {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, v))
		}
	}
	if suggestion != "" {
		sb.WriteString(fmt.Sprintf("Suggestion: %s\n", suggestion))
	}

	_, writeErr := w.Write([]byte(sb.String()))
	return writeErr
}

// bellOnStderr reports whether w is a terminal, mirroring ssss.c's
// fatal() which rings the bell only when stderr is interactive.
func bellOnStderr(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: Fd() returns uintptr, safe conversion for term.IsTerminal
}
