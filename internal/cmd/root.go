// Package cmd implements the logrotd commands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mordilloSan/go-baselog/internal/version"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "logrotd",
	Short: "Persist a log stream into rotated files",
	Long: `logrotd reads log lines from standard input, typically the standard
error of a supervised process, and appends them to a file that is rotated
after a fixed number of lines, keeping a bounded number of old files.

The service name, start trigger and rotation limits come from a YAML
service descriptor.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command and returns any error.
func Execute() error {
	return rootCmd.Execute()
}
