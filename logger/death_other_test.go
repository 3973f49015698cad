//go:build !unix

package logger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireAbortSignal(t *testing.T, state *os.ProcessState) {
	t.Helper()
	require.Equal(t, abortExitCode, state.ExitCode())
}
