package logger

import (
	"fmt"
	"strings"
)

func (l *Logger) logv(calldepth int, s Severity, v []any) {
	if !l.threshold.Enabled(s) {
		return
	}
	l.emit(calldepth+1, s, fmt.Sprint(v...))
}

func (l *Logger) logln(calldepth int, s Severity, v []any) {
	if !l.threshold.Enabled(s) {
		return
	}
	l.emit(calldepth+1, s, strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func (l *Logger) logf(calldepth int, s Severity, format string, v []any) {
	if !l.threshold.Enabled(s) {
		return
	}
	l.emit(calldepth+1, s, fmt.Sprintf(format, v...))
}

// plog appends the description of err, which the caller captured before
// doing anything else.
func (l *Logger) plog(calldepth int, s Severity, err error, msg string) {
	l.emit(calldepth+1, s, msg+": "+describeError(err))
}

// --- Logger methods ---

// Log logs the operands, concatenated as by fmt.Sprint, at severity s.
func (l *Logger) Log(s Severity, v ...any) { l.logv(2, s, v) }

// Logf logs a message formatted with fmt.Sprintf at severity s.
func (l *Logger) Logf(s Severity, format string, v ...any) { l.logf(2, s, format, v) }

// PLog logs the operands followed by ": " and the description of err.
// err is typically a syscall.Errno captured right after the failing call.
func (l *Logger) PLog(s Severity, err error, v ...any) {
	if !l.threshold.Enabled(s) {
		return
	}
	l.plog(2, s, err, fmt.Sprint(v...))
}

// PLogf is PLog with a format string.
func (l *Logger) PLogf(s Severity, err error, format string, v ...any) {
	if !l.threshold.Enabled(s) {
		return
	}
	l.plog(2, s, err, fmt.Sprintf(format, v...))
}

func (l *Logger) Verbosef(format string, v ...any) { l.logf(2, Verbose, format, v) }
func (l *Logger) Debugf(format string, v ...any)   { l.logf(2, Debug, format, v) }
func (l *Logger) Infof(format string, v ...any)    { l.logf(2, Info, format, v) }
func (l *Logger) Warnf(format string, v ...any)    { l.logf(2, Warning, format, v) }
func (l *Logger) Errorf(format string, v ...any)   { l.logf(2, Error, format, v) }

// Fatalf logs at Fatal and aborts the process.
func (l *Logger) Fatalf(format string, v ...any) { l.logf(2, Fatal, format, v) }

func (l *Logger) Verboseln(v ...any) { l.logln(2, Verbose, v) }
func (l *Logger) Debugln(v ...any)   { l.logln(2, Debug, v) }
func (l *Logger) Infoln(v ...any)    { l.logln(2, Info, v) }
func (l *Logger) Warnln(v ...any)    { l.logln(2, Warning, v) }
func (l *Logger) Errorln(v ...any)   { l.logln(2, Error, v) }

// Fatalln logs at Fatal and aborts the process.
func (l *Logger) Fatalln(v ...any) { l.logln(2, Fatal, v) }

// Unimplemented logs "<package.Function> unimplemented " for the calling
// function at severity s. At Fatal it aborts.
func (l *Logger) Unimplemented(s Severity) {
	if !l.threshold.Enabled(s) {
		return
	}
	l.emit(2, s, callerName(1)+" unimplemented ")
}

// PUnimplemented is Unimplemented decorated with the description of err.
func (l *Logger) PUnimplemented(s Severity, err error) {
	if !l.threshold.Enabled(s) {
		return
	}
	l.plog(2, s, err, callerName(1)+" unimplemented ")
}

// --- Package-level functions on the default logger ---

// MinimumSeverity returns the threshold of the default logger.
func MinimumSeverity() Severity { return Default().threshold.Level() }

// SetMinimumSeverity changes the threshold of the default logger.
func SetMinimumSeverity(s Severity) { Default().threshold.Set(s) }

// ScopedSeverity temporarily overrides the default logger's threshold:
//
//	defer logger.ScopedSeverity(logger.Debug).Restore()
func ScopedSeverity(s Severity) *Scope { return Default().threshold.Push(s) }

// Log logs the operands, concatenated as by fmt.Sprint, at severity s.
func Log(s Severity, v ...any) { Default().logv(2, s, v) }

// Logf logs a message formatted with fmt.Sprintf at severity s.
func Logf(s Severity, format string, v ...any) { Default().logf(2, s, format, v) }

// PLog logs the operands followed by ": " and the description of err.
//
//	if _, err := os.Open(path); err != nil {
//	    logger.PLog(logger.Error, err, "open ", path)
//	}
func PLog(s Severity, err error, v ...any) {
	l := Default()
	if !l.threshold.Enabled(s) {
		return
	}
	l.plog(2, s, err, fmt.Sprint(v...))
}

// PLogf is PLog with a format string.
func PLogf(s Severity, err error, format string, v ...any) {
	l := Default()
	if !l.threshold.Enabled(s) {
		return
	}
	l.plog(2, s, err, fmt.Sprintf(format, v...))
}

// Verbosef logs a verbose message formatted with fmt.Sprintf.
func Verbosef(format string, v ...any) { Default().logf(2, Verbose, format, v) }

// Debugf logs a debug message formatted with fmt.Sprintf.
func Debugf(format string, v ...any) { Default().logf(2, Debug, format, v) }

// Infof logs an informational message formatted with fmt.Sprintf.
func Infof(format string, v ...any) { Default().logf(2, Info, format, v) }

// Warnf logs a warning formatted with fmt.Sprintf.
func Warnf(format string, v ...any) { Default().logf(2, Warning, format, v) }

// Errorf logs an error message formatted with fmt.Sprintf.
func Errorf(format string, v ...any) { Default().logf(2, Error, format, v) }

// Fatalf logs a fatal message formatted with fmt.Sprintf and aborts the process.
// It does not return.
func Fatalf(format string, v ...any) { Default().logf(2, Fatal, format, v) }

// Verboseln logs a verbose message joining the operands with spaces.
func Verboseln(v ...any) { Default().logln(2, Verbose, v) }

// Debugln logs a debug message joining the operands with spaces.
func Debugln(v ...any) { Default().logln(2, Debug, v) }

// Infoln logs an informational message joining the operands with spaces.
func Infoln(v ...any) { Default().logln(2, Info, v) }

// Warnln logs a warning joining the operands with spaces.
func Warnln(v ...any) { Default().logln(2, Warning, v) }

// Errorln logs an error message joining the operands with spaces.
func Errorln(v ...any) { Default().logln(2, Error, v) }

// Fatalln logs a fatal message joining the operands with spaces and aborts
// the process. It does not return.
func Fatalln(v ...any) { Default().logln(2, Fatal, v) }

// Unimplemented marks a stub: it logs "<package.Function> unimplemented "
// for the calling function at severity s.
func Unimplemented(s Severity) {
	l := Default()
	if !l.threshold.Enabled(s) {
		return
	}
	l.emit(2, s, callerName(1)+" unimplemented ")
}

// PUnimplemented is Unimplemented decorated with the description of err.
func PUnimplemented(s Severity, err error) {
	l := Default()
	if !l.threshold.Enabled(s) {
		return
	}
	l.plog(2, s, err, callerName(1)+" unimplemented ")
}
