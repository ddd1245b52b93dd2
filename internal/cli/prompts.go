package cli

import (
	"bufio"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"

	"github.com/mrz1836/xsss/internal/secure"
	xerrors "github.com/mrz1836/xsss/pkg/errors"
)

// readSecretLine reads a single line from stdin with terminal echo
// disabled when stdin is a terminal, falling back to a buffered line read
// (echo left to the shell) when it is piped. The caller owns the returned
// bytes and must call secure.Wipe on them once done. The prompt is
// suppressed when quiet is set, mirroring ssss.c's opt_quiet gate.
func readSecretLine(prompt string, quiet bool) ([]byte, error) {
	if term.IsTerminal(int(syscall.Stdin)) { //nolint:gosec // G115: syscall.Stdin is a small fixed fd
		if !quiet {
			fmt.Fprint(os.Stderr, prompt)
		}
		line, err := term.ReadPassword(int(syscall.Stdin)) //nolint:gosec // G115: syscall.Stdin is a small fixed fd
		if !quiet {
			fmt.Fprintln(os.Stderr)
		}
		if err != nil {
			return nil, fmt.Errorf("reading secret: %w", err)
		}
		return line, nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && len(line) == 0 {
		return nil, fmt.Errorf("reading secret: %w", err)
	}
	line = trimNewline(line)
	return []byte(line), nil
}

// readShareLines reads count lines from stdin, one share per line, as raw
// byte buffers the caller can secure.Lock/secure.Wipe. Echo is left enabled:
// shares are not secret on their own below the threshold, and ssss.c's
// combine behaves the same way. The per-line prompt is suppressed when
// quiet is set, mirroring ssss.c's opt_quiet gate.
func readShareLines(count int, quiet bool) ([][]byte, error) {
	reader := bufio.NewReader(os.Stdin)
	lines := make([][]byte, 0, count)

	for i := 0; i < count; i++ {
		if !quiet {
			fmt.Fprintf(os.Stderr, "Share [%d/%d]: ", i+1, count)
		}
		line, err := reader.ReadString('\n')
		if err != nil && len(line) == 0 {
			return nil, fmt.Errorf("reading share: %w", err)
		}
		lines = append(lines, []byte(trimNewline(line)))
	}

	return lines, nil
}

// trimNewline strips a trailing "\n" or "\r\n" from a line read with
// bufio.Reader.ReadString('\n').
func trimNewline(s string) string {
	n := len(s)
	if n > 0 && s[n-1] == '\n' {
		n--
	}
	if n > 0 && s[n-1] == '\r' {
		n--
	}
	return s[:n]
}

// lockOrWarn attempts to mlock a secret buffer read directly from stdin,
// warning (or failing, under --require-lock) if it cannot.
func lockOrWarn(data []byte, requireLock bool) error {
	if secure.Lock(data) {
		return nil
	}
	if requireLock {
		return xerrors.WithDetails(xerrors.ErrMemoryLock, map[string]string{"reason": "mlock failed and --require-lock was set"})
	}
	fmt.Fprintln(os.Stderr, "WARNING: failed to lock secret memory; it may be paged to swap")
	return nil
}
