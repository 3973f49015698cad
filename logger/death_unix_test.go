//go:build unix

package logger

import (
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func requireAbortSignal(t *testing.T, state *os.ProcessState) {
	t.Helper()
	ws, ok := state.Sys().(syscall.WaitStatus)
	require.True(t, ok, "unexpected wait status type %T", state.Sys())
	require.True(t, ws.Signaled(), "expected death by signal, got %v", state)
	require.Equal(t, unix.SIGABRT, ws.Signal())
}
