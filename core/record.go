package core

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Record represents a single log event with all its metadata. It is
// built fresh per call and never mutated after construction; middleware
// that wants to change a record must return a modified copy.
type Record struct {
	Time      time.Time
	Namespace string
	Caller    CallerInfo
	Level     Level
	// ErrorLevel is true when Level is ErrorLevel or above.
	ErrorLevel bool
	// Args holds the raw call-site arguments. When the first argument
	// was an error it is split out into Err instead.
	Args []any
	Err  error
	// Format is the printf-style format string for *f call sites, or
	// empty for print-style joining.
	Format string
	// Message is the rendered message text. It is filled in lazily by
	// the fan-out, after middleware has run, so suppressed records
	// never pay the formatting cost.
	Message string
	// Hostname, Timestamp, and DefaultOutput are resolved by the
	// fan-out before delivery.
	Hostname      string
	Timestamp     string
	DefaultOutput string
	// Shared is the opaque shared-appender-config map from the live
	// config, passed through to every appender.
	Shared map[string]any
	// ProfileStats carries raw profiling statistics when the record is
	// a profiling report, for appenders that consume them
	// programmatically.
	ProfileStats any
}

// Clone returns a shallow copy of the record. Middleware uses it to
// produce a modified record without aliasing the original.
func (r *Record) Clone() *Record {
	c := *r
	return &c
}

// RenderMessage computes the message text from Format and Args:
// printf-style substitution when Format is set, print-style joining
// with single spaces otherwise.
func (r *Record) RenderMessage() string {
	if r.Format != "" {
		return fmt.Sprintf(r.Format, r.Args...)
	}
	if len(r.Args) == 0 {
		if r.Err != nil {
			return r.Err.Error()
		}
		return ""
	}
	if len(r.Args) == 1 {
		return renderArg(r.Args[0])
	}
	var sb strings.Builder
	for i, a := range r.Args {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(renderArg(a))
	}
	return sb.String()
}

// renderArg stringifies a single argument, special-casing the common
// types so they never go through reflection.
func renderArg(a any) string {
	switch v := a.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Duration:
		return v.String()
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", a)
	}
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}
