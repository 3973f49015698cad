package main

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/mordilloSan/go-baselog/logger"
)

// Example demonstrating go-baselog usage.
func main() {
	logFile := ""

	if len(os.Args) > 1 {
		logFile = os.Args[1]
	}

	// Usage: ./go-baselog [logfile]
	// Example: LOGGER_SEVERITY=verbose ./go-baselog ./app.log
	logger.Init(logger.Config{
		Colorize: isatty.IsTerminal(os.Stderr.Fd()),
		FilePath: logFile,
	})
	if logFile != "" {
		defer logger.Close() // Don't forget to close the log file!
		logger.Infof("Logging to file: %s", logFile)
	} else {
		logger.Infof("Logging to stderr only (provide a log file path to also log to a file)")
	}

	logger.Verbosef("very chatty")
	logger.Debugf("starting at %v", time.Now())
	logger.Infof("hello %s", "world")
	logger.Warnln("be", "careful")
	logger.Errorf("oops: %v", "something happened")

	func() {
		defer logger.ScopedSeverity(logger.Debug).Restore()
		logger.Debugf("visible inside the scope")
	}()
	logger.Debugf("hidden again unless LOGGER_SEVERITY lowers the threshold")

	if _, err := os.Open("/does/not/exist"); err != nil {
		logger.PLog(logger.Warning, err, "open /does/not/exist")
	}

	logger.Stream(logger.Info).Add("built ", 3, " parts").Addf(" in %s", time.Millisecond).Emit()

	logger.Unimplemented(logger.Warning)

	logger.CheckEq(len(os.Args) >= 1, true)

	// Uncomment to see a failed check abort the program:
	// logger.CheckStrEq("foo", "bar")
}
