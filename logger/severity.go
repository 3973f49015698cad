package logger

import (
	"strings"

	"github.com/pkg/errors"
)

// Severity is the ordered level of a log message. It is used both to tag a
// message and as the filtering threshold.
type Severity int32

const (
	// Verbose is the most detailed severity.
	Verbose Severity = iota
	// Debug is for diagnostic output, suppressed by default.
	Debug
	// Info is the default threshold.
	Info
	// Warning is for unexpected conditions that do not stop the program.
	Warning
	// Error is for failures that affect functionality.
	Error
	// Fatal is always emitted and aborts the process after logging.
	Fatal
)

// severityChars is indexed by Severity.
const severityChars = "VDIWEF"

// ErrInvalidSeverity is returned by ParseSeverity for unknown names.
var ErrInvalidSeverity = errors.New("invalid severity")

// AllSeverities returns every severity in ascending order.
func AllSeverities() []Severity {
	return []Severity{Verbose, Debug, Info, Warning, Error, Fatal}
}

// Valid reports whether s is one of the defined severities.
func (s Severity) Valid() bool {
	return s >= Verbose && s <= Fatal
}

// Char returns the single-character tag used in the line prefix.
func (s Severity) Char() byte {
	if !s.Valid() {
		return '?'
	}
	return severityChars[s]
}

// String returns the uppercase name of the severity.
func (s Severity) String() string {
	switch s {
	case Verbose:
		return "VERBOSE"
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity parses a severity name (case-insensitive) or its single
// character tag.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose", "v":
		return Verbose, nil
	case "debug", "d":
		return Debug, nil
	case "info", "i":
		return Info, nil
	case "warning", "warn", "w":
		return Warning, nil
	case "error", "err", "e":
		return Error, nil
	case "fatal", "f":
		return Fatal, nil
	default:
		return Info, errors.Wrapf(ErrInvalidSeverity, "%q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errors.Wrapf(ErrInvalidSeverity, "%d", int32(s))
	}
	return []byte(strings.ToLower(s.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
