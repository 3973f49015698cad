package logger

import (
	"os"
	"runtime/debug"
	"time"
)

// abortExitCode is the status reported by a shell for a SIGABRT death.
const abortExitCode = 134

// abortProcess terminates the process abnormally. On Unix it raises SIGABRT
// with the traceback level at "crash", so the runtime re-raises the signal
// with the default disposition after printing goroutine stacks and the
// supervisor observes a signal death.
func abortProcess() {
	debug.SetTraceback("crash")
	raiseAbort()
	// Signal delivery is asynchronous on some platforms.
	time.Sleep(time.Second)
	os.Exit(abortExitCode)
}
