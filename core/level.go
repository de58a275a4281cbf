package core

import (
	"errors"
	"fmt"
	"strings"
)

// Level represents the severity of a log event. The zero value Unset
// is valid and scores below every named level, so an unconfigured
// threshold lets everything through.
type Level int8

const (
	// Unset is the zero value; it scores 0 and is never emitted itself.
	Unset Level = iota
	// TraceLevel for extremely fine-grained tracing output
	TraceLevel
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for unrecoverable failures
	FatalLevel
	// ReportLevel for always-interesting output such as profiling reports
	ReportLevel

	maxLevel = ReportLevel
)

// ErrInvalidLevel is returned when a value outside the fixed level
// scale is used where a Level is required.
var ErrInvalidLevel = errors.New("core: invalid level")

// Valid reports whether l is Unset or one of the named levels.
func (l Level) Valid() bool {
	return l >= Unset && l <= maxLevel
}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	case ReportLevel:
		return "REPORT"
	case Unset:
		return "UNSET"
	default:
		return "UNKNOWN"
	}
}

// Compare returns score(a) - score(b). Both arguments must be on the
// fixed scale; Unset is legal and scores 0.
func Compare(a, b Level) (int, error) {
	if !a.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLevel, a)
	}
	if !b.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLevel, b)
	}
	return int(a) - int(b), nil
}

// Sufficient reports whether level meets or exceeds threshold.
// The boundary is inclusive: Sufficient(l, l) is always true.
func Sufficient(level, threshold Level) (bool, error) {
	c, err := Compare(level, threshold)
	if err != nil {
		return false, err
	}
	return c >= 0, nil
}

// ParseLevel converts a string to a Level. Unknown names return
// ErrInvalidLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "FATAL":
		return FatalLevel, nil
	case "REPORT":
		return ReportLevel, nil
	case "":
		return Unset, nil
	default:
		return Unset, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}

// Levels returns the named levels in ascending severity order.
func Levels() []Level {
	return []Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel, ReportLevel}
}
