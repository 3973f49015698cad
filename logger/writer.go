package logger

import (
	"io"
	"path/filepath"
	"runtime"
	"strings"
)

// Writer returns an io.Writer that logs each Write as one message at
// severity s on the default logger. A trailing newline is dropped, so the
// standard library log package can be redirected:
//
//	log.SetFlags(0)
//	log.SetOutput(logger.Writer(logger.Info))
func Writer(s Severity) io.Writer {
	return &severityWriter{severity: s}
}

// Writer is the method form of the package-level Writer.
func (l *Logger) Writer(s Severity) io.Writer {
	return &severityWriter{l: l, severity: s}
}

type severityWriter struct {
	l        *Logger // nil means the default logger at write time
	severity Severity
}

func (w *severityWriter) Write(p []byte) (int, error) {
	l := w.l
	if l == nil {
		l = Default()
	}
	if l.threshold.Enabled(w.severity) {
		file, line := writerCaller()
		l.record(w.severity, file, line, strings.TrimSuffix(string(p), "\n"))
	}
	return len(p), nil
}

// writerCaller returns the location of the first frame above Write that is
// not inside the log or fmt packages, so a line redirected from log.Printf
// carries the file and line of the Printf call.
func writerCaller() (string, int) {
	var pcs [16]uintptr
	n := runtime.Callers(3, pcs[:]) // skip Callers, writerCaller and Write
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !forwardingPackage(frame.Function) {
			return filepath.Base(frame.File), frame.Line
		}
		if !more {
			return "unknown", 0
		}
	}
}

// forwardingPackage reports whether function belongs to the standard log
// or fmt package, judged by its full import path.
func forwardingPackage(function string) bool {
	start := strings.LastIndex(function, "/") + 1
	dot := strings.Index(function[start:], ".")
	if dot < 0 {
		return false
	}
	pkg := function[:start+dot]
	return pkg == "log" || pkg == "fmt"
}
