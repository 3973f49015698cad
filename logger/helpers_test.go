package logger

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureStderr points the default logger at a buffer with a fresh
// configuration and restores stderr when the test ends.
func captureStderr(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := outStderr
	outStderr = &buf
	t.Setenv("JOURNAL_STREAM", "")
	t.Setenv(severityEnv, "")
	Init(Config{})
	t.Cleanup(func() {
		outStderr = old
		Init(Config{})
	})
	return &buf
}

// logPattern matches a line at severity s with message, logged from the
// source file of the caller.
func logPattern(s Severity, message string) *regexp.Regexp {
	_, file, _, _ := runtime.Caller(1)
	return regexp.MustCompile(fmt.Sprintf(`%c[[:space:]]+[[:digit:]]+[[:space:]]+[[:digit:]]+ %s:[[:digit:]]+\] %s`,
		s.Char(), regexp.QuoteMeta(filepath.Base(file)), regexp.QuoteMeta(message)))
}

var errAborted = errors.New("aborted")

// expectAbort runs fn with the default logger's abort replaced by a panic
// and fails the test unless fn aborted.
func expectAbort(t *testing.T, fn func()) {
	t.Helper()
	l := Default()
	old := l.abort
	l.abort = func() { panic(errAborted) }
	defer func() { l.abort = old }()

	didAbort := func() (aborted bool) {
		defer func() {
			if r := recover(); r != nil {
				if r != errAborted {
					panic(r)
				}
				aborted = true
			}
		}()
		fn()
		return false
	}()
	if !didAbort {
		t.Fatal("expected the call to abort")
	}
}

const deathTestEnv = "BASELOG_DEATH_TEST"

// expectDeath runs fn in a child copy of the test binary and requires the
// child to die from an abort with stderr matching pattern.
//
// In the child only the case selected by name runs; other cases return
// immediately so the test body reaches the selected one.
func expectDeath(t *testing.T, name string, fn func(), pattern string) {
	t.Helper()
	if mode, ok := os.LookupEnv(deathTestEnv); ok {
		if mode == name {
			fn()
			// Reaching here means fn did not abort; the parent sees a clean exit.
			os.Exit(0)
		}
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^"+regexp.QuoteMeta(t.Name())+"$", "-test.count=1")
	cmd.Env = append(os.Environ(), deathTestEnv+"="+name)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr, "%s: child exited cleanly; stderr:\n%s", name, stderr.String())
	requireAbortSignal(t, exitErr.ProcessState)
	require.Regexp(t, regexp.MustCompile(pattern), stderr.String(), name)
}
