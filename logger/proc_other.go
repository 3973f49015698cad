//go:build !unix

package logger

import "os"

func threadID() int {
	return os.Getpid()
}

func raiseAbort() {}
