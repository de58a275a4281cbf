package config

import (
	"fmt"

	"github.com/logforge/logforge/appender"
	"github.com/logforge/logforge/core"
)

// Config is one immutable configuration snapshot. It is only ever
// replaced wholesale through the Store; nothing mutates a published
// Config in place.
type Config struct {
	// Level is the current threshold; events below it are suppressed.
	Level core.Level
	// NamespaceWhitelist and NamespaceBlacklist hold dotted glob
	// patterns (see the filter package).
	NamespaceWhitelist []string
	NamespaceBlacklist []string
	// Middleware is applied to each record before fan-out, composed
	// right to left.
	Middleware []core.Middleware
	// TimestampPattern is a Go time layout; empty uses the default.
	// TimestampLocale selects localized month names; empty is English.
	TimestampPattern string
	TimestampLocale  string
	// SharedAppenderConfig is an opaque map handed to every appender
	// on each record.
	SharedAppenderConfig map[string]any
	// Appenders maps appender id to its spec.
	Appenders map[string]appender.Spec
}

// Default returns the starting configuration: info threshold, no
// filtering, a single enabled console appender on stdout.
func Default() *Config {
	return &Config{
		Level: core.InfoLevel,
		Appenders: map[string]appender.Spec{
			"console": {
				ID:      "console",
				Enabled: true,
				Deliver: appender.Console(nil),
			},
		},
	}
}

// Validate checks every registered appender spec, failing at
// registration time rather than at call time.
func (c *Config) Validate() error {
	if !c.Level.Valid() {
		return fmt.Errorf("config: %w: %d", core.ErrInvalidLevel, c.Level)
	}
	for id, spec := range c.Appenders {
		if spec.ID == "" {
			// Normalize: the map key is authoritative.
			spec.ID = id
			c.Appenders[id] = spec
		}
		if id != spec.ID {
			return fmt.Errorf("config: appender registered as %q but spec id is %q", id, spec.ID)
		}
		if err := spec.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// clone returns a copy with fresh slices and maps, so a mutator can
// edit it freely before publishing.
func (c *Config) clone() *Config {
	n := *c
	n.NamespaceWhitelist = append([]string(nil), c.NamespaceWhitelist...)
	n.NamespaceBlacklist = append([]string(nil), c.NamespaceBlacklist...)
	n.Middleware = append([]core.Middleware(nil), c.Middleware...)
	if c.SharedAppenderConfig != nil {
		n.SharedAppenderConfig = make(map[string]any, len(c.SharedAppenderConfig))
		for k, v := range c.SharedAppenderConfig {
			n.SharedAppenderConfig[k] = v
		}
	}
	if c.Appenders != nil {
		n.Appenders = make(map[string]appender.Spec, len(c.Appenders))
		for k, v := range c.Appenders {
			n.Appenders[k] = v
		}
	}
	return &n
}
