package appender

import (
	"errors"
	"fmt"
	"time"

	"github.com/logforge/logforge/core"
)

// Spec describes a registered appender: a delivery function plus the
// per-appender policies the engine enforces around it. Specs are held
// in the config and wrapped once per dispatch-cache rebuild.
type Spec struct {
	// ID identifies the appender in config paths and metrics labels.
	ID string
	// Enabled gates the appender as a whole.
	Enabled bool
	// MinLevel is the minimum level this appender accepts. Unset means
	// the appender is eligible at every level once enabled.
	MinLevel core.Level
	// Async hands deliveries to a dedicated background worker instead
	// of running them on the calling goroutine.
	Async bool
	// RateLimitWindow suppresses repeat deliveries of the same
	// (namespace, first argument) within the window. Zero disables
	// rate limiting.
	RateLimitWindow time.Duration
	// Deliver receives the fully-resolved record. I/O failures should
	// be returned, not panicked; either way the engine isolates them.
	Deliver func(*core.Record) error
}

// Validate checks the spec at registration time rather than at call
// time.
func (s Spec) Validate() error {
	if s.ID == "" {
		return errors.New("appender: spec missing id")
	}
	if s.Deliver == nil {
		return fmt.Errorf("appender %q: missing deliver function", s.ID)
	}
	if !s.MinLevel.Valid() {
		return fmt.Errorf("appender %q: %w: %d", s.ID, core.ErrInvalidLevel, s.MinLevel)
	}
	if s.RateLimitWindow < 0 {
		return fmt.Errorf("appender %q: negative rate limit window", s.ID)
	}
	return nil
}
