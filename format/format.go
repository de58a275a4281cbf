// Package format renders records into the default human-readable
// output line consumed by the built-in console and file appenders.
package format

import (
	"bytes"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultTimestampLayout is the Go layout for the default timestamp,
// e.g. "2026-Aug-31 14:03:59 +0000".
const DefaultTimestampLayout = "2006-Jan-02 15:04:05 -0700"

// Layout describes how timestamps are rendered: a Go time layout plus
// an optional locale for month names. An empty Locale (or "en") keeps
// Go's English month names.
type Layout struct {
	Pattern string
	Locale  string
}

// monthNames maps a locale to its short month names, replacing Go's
// English ones in rendered timestamps. Only the locales the built-in
// appenders have needed so far; unknown locales fall back to English.
var monthNames = map[string][12]string{
	"de": {"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
	"fr": {"janv", "févr", "mars", "avr", "mai", "juin", "juil", "août", "sept", "oct", "nov", "déc"},
}

// Timestamp formats t according to the layout. A zero-value Layout
// uses DefaultTimestampLayout and English month names.
func Timestamp(t time.Time, l Layout) string {
	pattern := l.Pattern
	if pattern == "" {
		pattern = DefaultTimestampLayout
	}
	s := t.Format(pattern)
	if names, ok := monthNames[l.Locale]; ok && strings.Contains(pattern, "Jan") {
		s = strings.Replace(s, t.Format("Jan"), names[t.Month()-1], 1)
	}
	return s
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// Line renders the default output:
//
//	<timestamp> <hostname> <LEVEL> [<namespace>] - <message><error-or-empty>
//
// with the error, when present, appended on its own line. Stack trace
// rendering beyond the error text is left to specialized appenders.
type Line struct {
	Timestamp string
	Hostname  string
	Level     string
	Namespace string
	Message   string
	Err       error
	Caller    string
}

// Render returns the formatted line without a trailing newline.
func (l Line) Render() string {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()

	buf.WriteString(l.Timestamp)
	buf.WriteByte(' ')
	buf.WriteString(l.Hostname)
	buf.WriteByte(' ')
	buf.WriteString(l.Level)
	buf.WriteString(" [")
	buf.WriteString(l.Namespace)
	buf.WriteString("] - ")
	if l.Caller != "" {
		buf.WriteByte('[')
		buf.WriteString(l.Caller)
		buf.WriteString("] ")
	}
	buf.WriteString(l.Message)
	if l.Err != nil {
		buf.WriteByte('\n')
		buf.WriteString(l.Err.Error())
	}

	out := buf.String()
	if buf.Cap() <= 64*1024 { // Don't keep very large buffers
		bufferPool.Put(buf)
	}
	return out
}

// CallerRef renders a short file:line reference, or "" when unknown.
func CallerRef(shortFile string, line int) string {
	if shortFile == "" {
		return ""
	}
	return shortFile + ":" + strconv.Itoa(line)
}
