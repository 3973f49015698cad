package cmd

import (
	"io"
	"log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mordilloSan/go-baselog/internal/rotate"
	"github.com/mordilloSan/go-baselog/internal/service"
	"github.com/mordilloSan/go-baselog/logger"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Copy standard input into rotated files",
	Long: `Copy standard input into rotated files until end of input.

If the descriptor has a trigger, it must be satisfied by a --prop flag,
otherwise logrotd exits with status 3 without reading its input.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

var (
	runConfigPath string
	runProps      map[string]string
	runVerbose    bool
)

func init() {
	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "service descriptor (default: built-in)")
	runCmd.Flags().StringToStringVar(&runProps, "prop", nil, "property value checked against the trigger (key=value)")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "log debug diagnostics")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	d, err := loadDescriptor(runConfigPath)
	if err != nil {
		return err
	}

	logger.Init(d.Log)
	defer func() { _ = logger.Close() }()
	if runVerbose {
		logger.SetMinimumSeverity(logger.Debug)
	}
	log.SetFlags(0)
	log.SetOutput(logger.Writer(logger.Info))

	if !d.Triggered(runProps) {
		logger.Infof("%s: trigger %q not met, not starting", d.Name, d.Trigger)
		return &ExitCodeError{Code: exitNotTriggered, Msg: "trigger not met"}
	}
	logger.CheckGt(d.Rotation.MaxLines, 0)

	logger.Debugf("%s: writing %s (max %d files x %d lines)", d.Name, d.Rotation.Path, d.Rotation.MaxFiles, d.Rotation.MaxLines)
	n, err := copyStream(cmd.InOrStdin(), d.RotateOptions())
	if err != nil {
		logger.PLog(logger.Error, err, d.Name, ": copy failed after ", n, " bytes")
		return err
	}
	logger.Infof("%s: end of input after %d bytes", d.Name, n)
	return nil
}

// copyStream copies r into a rotating writer and closes it.
func copyStream(r io.Reader, opts rotate.Options) (int64, error) {
	w, err := rotate.Open(opts)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(w, r)
	if closeErr := w.Close(); err == nil && closeErr != nil {
		err = errors.Wrap(closeErr, "close output")
	}
	return n, err
}

func loadDescriptor(path string) (*service.Descriptor, error) {
	if path == "" {
		return service.Default(), nil
	}
	return service.Load(path)
}
