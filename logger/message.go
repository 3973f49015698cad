package logger

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Message accumulates a log message piece by piece and is written once, by
// Emit. The source location is the call to Stream.
//
//	m := logger.Stream(logger.Info)
//	m.Add("loaded ", n, " entries")
//	if skipped > 0 {
//	    m.Addf(" (%d skipped)", skipped)
//	}
//	m.Emit()
type Message struct {
	l        *Logger
	severity Severity
	file     string
	line     int
	buf      strings.Builder
	err      error
	withErr  bool
	enabled  bool
	emitted  bool
}

func (l *Logger) stream(calldepth int, s Severity) *Message {
	m := &Message{l: l, severity: s, enabled: l.threshold.Enabled(s)}
	if !m.enabled {
		return m
	}
	_, file, line, ok := runtime.Caller(calldepth)
	if !ok {
		file, line = "unknown", 0
	}
	m.file, m.line = filepath.Base(file), line
	return m
}

// Stream starts a message at severity s.
func (l *Logger) Stream(s Severity) *Message { return l.stream(2, s) }

// PStream starts a message that is decorated with the description of err
// when emitted.
func (l *Logger) PStream(s Severity, err error) *Message {
	m := l.stream(2, s)
	m.err, m.withErr = err, true
	return m
}

// Stream starts a message at severity s on the default logger.
func Stream(s Severity) *Message { return Default().stream(2, s) }

// PStream starts an errno-decorated message on the default logger.
func PStream(s Severity, err error) *Message {
	m := Default().stream(2, s)
	m.err, m.withErr = err, true
	return m
}

// Add appends the operands as fmt.Sprint would.
func (m *Message) Add(v ...any) *Message {
	if m.enabled && !m.emitted {
		fmt.Fprint(&m.buf, v...)
	}
	return m
}

// Addf appends a formatted string.
func (m *Message) Addf(format string, v ...any) *Message {
	if m.enabled && !m.emitted {
		fmt.Fprintf(&m.buf, format, v...)
	}
	return m
}

// Emit writes the message. Later calls do nothing. A Fatal message aborts
// the process.
func (m *Message) Emit() {
	if !m.enabled || m.emitted {
		return
	}
	m.emitted = true
	msg := m.buf.String()
	if m.withErr {
		msg += ": " + describeError(m.err)
	}
	m.l.record(m.severity, m.file, m.line, msg)
}
