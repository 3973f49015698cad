// Package main is the entry point for logrotd, which reads a log stream on
// standard input and writes it to rotated files.
package main

import (
	"errors"
	"os"

	"github.com/mordilloSan/go-baselog/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var exitErr *cmd.ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
