package output

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Warn prints a warning message to stderr, prefixed per spec.md's wire
// contract. Callers honor --quiet/--QUIET by not calling this at all
// rather than by branching inside it.
func Warn(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, "WARNING: "+msg)
}

// Warnf prints a formatted warning message to stderr.
func Warnf(format string, args ...any) {
	Warn(fmt.Sprintf(format, args...))
}

// Fatal prints a fatal diagnostic to stderr, prefixed "FATAL: " and
// terminated by a period, per spec.md §6. It does not exit the process;
// callers are expected to follow it with os.Exit using the error's exit
// code.
func Fatal(msg string) {
	if term.IsTerminal(int(os.Stderr.Fd())) { //nolint:gosec // G115: Fd() returns uintptr, safe conversion for term.IsTerminal
		_, _ = os.Stderr.Write([]byte{'\a'})
	}
	_, _ = fmt.Fprintf(os.Stderr, "FATAL: %s.\n", msg)
}
