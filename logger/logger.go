package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Logger renders leveled lines to a destination stream.
// A Logger is safe for concurrent use; each line is written with one Write.
type Logger struct {
	threshold *Threshold

	// mu serialises writes so lines from concurrent goroutines never interleave.
	mu       sync.Mutex
	out      io.Writer
	outSet   bool // out was chosen with SetOutput; Init leaves it alone
	file     io.Writer
	closer   io.Closer
	colorize bool
	journal  bool

	// abort terminates the process after a Fatal line. It must not return.
	abort func()
}

// Dependency injection point for testing output.
var outStderr io.Writer = os.Stderr

// std is the process-wide logger behind the package-level functions.
var std atomic.Pointer[Logger]

func init() {
	std.Store(New(outStderr, NewThreshold(Info)))
}

// New returns a Logger writing to out and gated by threshold.
// A nil threshold means a fresh one at Info.
func New(out io.Writer, threshold *Threshold) *Logger {
	if threshold == nil {
		threshold = NewThreshold(Info)
	}
	if out == nil {
		out = io.Discard
	}
	return &Logger{
		threshold: threshold,
		out:       out,
		abort:     abortProcess,
	}
}

// Default returns the process-wide logger.
func Default() *Logger {
	return std.Load()
}

// ReplaceDefault installs l as the process-wide logger and returns the
// previous one. Intended for tests; restore the old logger when done.
func ReplaceDefault(l *Logger) *Logger {
	return std.Swap(l)
}

// Init configures the process-wide logger.
// If Config.Severity is empty, LOGGER_SEVERITY is used when set; otherwise Info.
// The destination is standard error unless SetOutput chose another one.
// Call Close() to close the log file when shutting down.
func Init(config Config) {
	l := Default()
	level, err := resolveSeverity(config.Severity)
	if err != nil {
		fmt.Fprintf(outStderr, "invalid log severity, using %s: %v\n", level, err)
	}

	var f *os.File
	if config.FilePath != "" {
		f, err = os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(outStderr, "failed to open log file %s: %v\n", config.FilePath, err)
			f = nil
		}
	}

	l.mu.Lock()
	if l.closer != nil {
		_ = l.closer.Close()
	}
	if !l.outSet {
		l.out = outStderr
	}
	l.file, l.closer = nil, nil
	if f != nil {
		l.file = &timestampWriter{w: f}
		l.closer = f
	}
	l.colorize = config.Colorize
	l.journal = shouldUseSyslogPrefix()
	l.mu.Unlock()

	l.threshold.Set(level)
}

// Close closes the log file if one was opened by Init.
func Close() error {
	return Default().Close()
}

// Close closes the file tee, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.file, l.closer = nil, nil
	return err
}

// SetOutput replaces the destination stream. The choice survives later
// calls to Init. A nil w goes back to standard error.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out, l.outSet = w, w != nil
	if w == nil {
		l.out = outStderr
	}
}

// SetColorize toggles colouring of the severity character on the destination.
func (l *Logger) SetColorize(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.colorize = on
}

// Threshold returns the threshold gating this logger.
func (l *Logger) Threshold() *Threshold {
	return l.threshold
}

func shouldUseSyslogPrefix() bool {
	return os.Getenv("JOURNAL_STREAM") != ""
}

func syslogPrefixFor(s Severity) string {
	switch s {
	case Verbose, Debug:
		return "<7>"
	case Info:
		return "<6>"
	case Warning:
		return "<4>"
	case Error:
		return "<3>"
	case Fatal:
		return "<2>"
	default:
		return ""
	}
}

// timestampWriter prepends a timestamp to each line for file outputs.
// Console lines carry no timestamp; the reader of the stream adds its own.
type timestampWriter struct {
	w io.Writer
}

func (t *timestampWriter) Write(data []byte) (int, error) {
	ts := time.Now().Format("01-02 15:04:05.000 ")
	buf := make([]byte, 0, len(data)+len(ts)*(1+strings.Count(string(data), "\n")))
	start := 0
	for i, b := range data {
		if b == '\n' {
			buf = append(buf, ts...)
			buf = append(buf, data[start:i+1]...)
			start = i + 1
		}
	}
	if start < len(data) {
		buf = append(buf, ts...)
		buf = append(buf, data[start:]...)
	}
	if _, err := t.w.Write(buf); err != nil {
		return 0, err
	}
	return len(data), nil
}

// emit resolves the caller calldepth frames up and writes msg.
// calldepth follows log.Logger.Output: 1 is the caller of emit.
func (l *Logger) emit(calldepth int, s Severity, msg string) {
	_, file, line, ok := runtime.Caller(calldepth)
	if !ok {
		file, line = "unknown", 0
	}
	l.record(s, filepath.Base(file), line, msg)
}

// record writes one record and aborts on Fatal.
func (l *Logger) record(s Severity, file string, line int, msg string) {
	pid, tid := os.Getpid(), threadID()

	l.mu.Lock()
	l.writeLocked(s, pid, tid, file, line, msg)
	if s == Fatal {
		l.syncLocked()
	}
	l.mu.Unlock()

	if s == Fatal {
		l.abort()
	}
}

// writeLocked renders every line of msg with the prefix and writes the
// result with one call per destination. Write errors are dropped.
func (l *Logger) writeLocked(s Severity, pid, tid int, file string, line int, msg string) {
	tail := " " + pad(pid) + " " + pad(tid) + " " + file + ":" + strconv.Itoa(line) + "] "
	tag := string(s.Char())

	var console, plain strings.Builder
	for _, text := range strings.Split(strings.TrimSuffix(msg, "\n"), "\n") {
		if l.journal {
			console.WriteString(syslogPrefixFor(s))
		}
		if l.colorize {
			console.WriteString(colorFor(s).Sprint(tag))
		} else {
			console.WriteString(tag)
		}
		console.WriteString(tail)
		console.WriteString(text)
		console.WriteByte('\n')

		if l.file != nil {
			plain.WriteString(tag)
			plain.WriteString(tail)
			plain.WriteString(text)
			plain.WriteByte('\n')
		}
	}

	_, _ = io.WriteString(l.out, console.String())
	if l.file != nil {
		_, _ = io.WriteString(l.file, plain.String())
	}
}

func (l *Logger) syncLocked() {
	type syncer interface{ Sync() error }
	if s, ok := l.out.(syncer); ok {
		_ = s.Sync()
	}
	if s, ok := l.closer.(syncer); ok {
		_ = s.Sync()
	}
}

// pad right-aligns n in a five-column field.
func pad(n int) string {
	s := strconv.Itoa(n)
	if len(s) >= 5 {
		return s
	}
	return strings.Repeat(" ", 5-len(s)) + s
}

// callerName returns "package.Function" for the frame calldepth up.
func callerName(calldepth int) string {
	pcs := make([]uintptr, 1)
	if runtime.Callers(calldepth+2, pcs) == 0 {
		return "unknown"
	}
	frame, _ := runtime.CallersFrames(pcs).Next()
	full := frame.Function
	if full == "" {
		return "unknown"
	}
	// Strip package path, keep package.Function
	if lastSlash := strings.LastIndex(full, "/"); lastSlash >= 0 && lastSlash+1 < len(full) {
		full = full[lastSlash+1:]
	}
	return full
}
