package format

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestTimestamp_DefaultLayout(t *testing.T) {
	ts := time.Date(2026, time.August, 31, 14, 3, 59, 0, time.UTC)
	got := Timestamp(ts, Layout{})
	if got != "2026-Aug-31 14:03:59 +0000" {
		t.Errorf("Timestamp() = %q", got)
	}
}

func TestTimestamp_CustomPattern(t *testing.T) {
	ts := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)
	got := Timestamp(ts, Layout{Pattern: time.RFC3339})
	if got != "2026-01-02T03:04:05Z" {
		t.Errorf("Timestamp() = %q", got)
	}
}

func TestTimestamp_Locale(t *testing.T) {
	ts := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	got := Timestamp(ts, Layout{Locale: "de"})
	if !strings.Contains(got, "Mär") {
		t.Errorf("Timestamp() = %q, want German month name", got)
	}

	// Unknown locale falls back to English.
	got = Timestamp(ts, Layout{Locale: "xx"})
	if !strings.Contains(got, "Mar") {
		t.Errorf("Timestamp() = %q, want English month name", got)
	}
}

func TestLine_Render(t *testing.T) {
	l := Line{
		Timestamp: "2026-Aug-31 14:03:59 +0000",
		Hostname:  "web1",
		Level:     "INFO",
		Namespace: "app.core",
		Message:   "server started",
	}
	got := l.Render()
	want := "2026-Aug-31 14:03:59 +0000 web1 INFO [app.core] - server started"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestLine_RenderWithError(t *testing.T) {
	l := Line{
		Timestamp: "ts", Hostname: "h", Level: "ERROR",
		Namespace: "app", Message: "request failed",
		Err: errors.New("connection refused"),
	}
	got := l.Render()
	if !strings.HasSuffix(got, "request failed\nconnection refused") {
		t.Errorf("Render() = %q, want error appended on its own line", got)
	}
}

func TestLine_RenderWithCaller(t *testing.T) {
	l := Line{
		Timestamp: "ts", Hostname: "h", Level: "DEBUG",
		Namespace: "app", Message: "m",
		Caller: CallerRef("server.go", 42),
	}
	if got := l.Render(); !strings.Contains(got, "[server.go:42]") {
		t.Errorf("Render() = %q, want caller reference", got)
	}
}
