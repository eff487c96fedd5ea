package sensors

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Sentinel error kinds for sensor failures. Callers classify with errors.Is;
// every backend wraps these with tool context.
var (
	ErrUnavailable = errors.New("sensor backend unavailable")
	ErrTimeout     = errors.New("sensor read timed out")
	ErrParse       = errors.New("temperature not found in output")
)

// runner abstracts command execution so backends can be tested against
// canned output.
type runner interface {
	run(ctx context.Context, name string, args ...string) (string, error)
	look(name string) bool
}

type execRunner struct {
	timeout time.Duration
}

func newExecRunner(timeout time.Duration) execRunner {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return execRunner{timeout: timeout}
}

func (r execRunner) run(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %s", ErrTimeout, name)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrUnavailable, name, err)
	}
	return string(out), nil
}

func (r execRunner) look(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// extractNumber returns the first decimal value embedded in s. Tool output is
// parsed locale-independently; only ASCII digits and a dot count.
func extractNumber(s string) (string, bool) {
	var b strings.Builder
	seenDigit := false
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			b.WriteRune(c)
			seenDigit = true
		case c == '.' && seenDigit:
			b.WriteRune(c)
		default:
			if seenDigit {
				return b.String(), true
			}
		}
	}
	return b.String(), seenDigit
}
