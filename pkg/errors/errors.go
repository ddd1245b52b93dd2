// Package errors provides structured error handling for xsss. It defines
// sentinel errors, exit codes, and helpers for adding context, details, and
// suggestions to errors.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Exit codes.
const (
	ExitSuccess      = 0 // Successful execution
	ExitGeneral      = 1 // General/unknown error
	ExitInput        = 2 // Invalid parameter or malformed secret input
	ExitPRNG         = 3 // Entropy source open/read/close failure
	ExitShareFormat  = 4 // Malformed share line
	ExitInconsistent = 5 // Singular reconstruction system
	ExitIO           = 6 // I/O failure reading stdin
)

// XsssError is the structured error type for xsss.
type XsssError struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for the user
	Cause      error             // Underlying error
	ExitCode   int               // Exit code for the CLI
}

func (e *XsssError) Error() string {
	msg := e.Message

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *XsssError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for XsssError, comparing by Code.
func (e *XsssError) Is(target error) bool {
	var t *XsssError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors, one per row of the error-handling table.
var (
	ErrGeneral = &XsssError{
		Code:     "GENERAL_ERROR",
		Message:  "an error occurred",
		ExitCode: ExitGeneral,
	}

	ErrInvalidParameter = &XsssError{
		Code:     "INVALID_PARAMETER",
		Message:  "invalid parameter",
		ExitCode: ExitInput,
	}

	ErrInputTooLong = &XsssError{
		Code:     "INPUT_TOO_LONG",
		Message:  "input string too long",
		ExitCode: ExitInput,
	}

	ErrInvalidSyntax = &XsssError{
		Code:     "INVALID_SYNTAX",
		Message:  "invalid syntax",
		ExitCode: ExitInput,
	}

	ErrPRNGFailure = &XsssError{
		Code:     "PRNG_FAILURE",
		Message:  "couldn't read from entropy source",
		ExitCode: ExitPRNG,
	}

	ErrMalformedShare = &XsssError{
		Code:     "MALFORMED_SHARE",
		Message:  "invalid share",
		ExitCode: ExitShareFormat,
	}

	ErrSharesInconsistent = &XsssError{
		Code:     "SHARES_INCONSISTENT",
		Message:  "shares inconsistent. Perhaps a single share was used twice",
		ExitCode: ExitInconsistent,
	}

	ErrMemoryLock = &XsssError{
		Code:     "MEMORY_LOCK_FAILED",
		Message:  "couldn't lock memory",
		ExitCode: ExitGeneral,
	}

	ErrIO = &XsssError{
		Code:     "IO_ERROR",
		Message:  "I/O error",
		ExitCode: ExitIO,
	}
)

// New creates a new XsssError with the given code and message.
func New(code, message string) *XsssError {
	return &XsssError{
		Code:     code,
		Message:  message,
		ExitCode: ExitGeneral,
	}
}

// Wrap wraps an error with additional context, preserving its code, exit
// code, and suggestion when the underlying error is already an XsssError.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var xe *XsssError
	if errors.As(err, &xe) {
		return &XsssError{
			Code:       xe.Code,
			Message:    fmt.Sprintf("%s: %s", msg, xe.Message),
			Details:    xe.Details,
			Suggestion: xe.Suggestion,
			Cause:      err,
			ExitCode:   xe.ExitCode,
		}
	}

	return &XsssError{
		Code:     "GENERAL_ERROR",
		Message:  msg,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithDetails attaches additional context to an error.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var xe *XsssError
	if errors.As(err, &xe) {
		return &XsssError{
			Code:       xe.Code,
			Message:    xe.Message,
			Details:    details,
			Suggestion: xe.Suggestion,
			Cause:      xe.Cause,
			ExitCode:   xe.ExitCode,
		}
	}

	return &XsssError{
		Code:     "GENERAL_ERROR",
		Message:  err.Error(),
		Details:  details,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithSuggestion attaches an actionable suggestion to an error.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	var xe *XsssError
	if errors.As(err, &xe) {
		return &XsssError{
			Code:       xe.Code,
			Message:    xe.Message,
			Details:    xe.Details,
			Suggestion: suggestion,
			Cause:      xe.Cause,
			ExitCode:   xe.ExitCode,
		}
	}

	return &XsssError{
		Code:       "GENERAL_ERROR",
		Message:    err.Error(),
		Suggestion: suggestion,
		Cause:      err,
		ExitCode:   ExitGeneral,
	}
}

// ExitCode returns the process exit code for an error, ExitSuccess for nil.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var xe *XsssError
	if errors.As(err, &xe) {
		return xe.ExitCode
	}

	return ExitGeneral
}

// Code returns the machine-readable error code for an error.
func Code(err error) string {
	var xe *XsssError
	if errors.As(err, &xe) {
		return xe.Code
	}
	return "GENERAL_ERROR"
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}
