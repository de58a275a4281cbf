package config

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/logforge/logforge/appender"
	"github.com/logforge/logforge/core"
)

// ChangeFunc observes a successful mutation. It runs synchronously
// inside the mutator, after the new snapshot is published and before
// the mutator returns, so derived state (dispatch cache, namespace
// filter) is rebuilt before any further mutation. It also fires once
// at registration with the then-current snapshot. levelOnly is true
// when nothing but the bare threshold changed; observers may skip
// cache rebuilds in that case because the cache is derived from the
// appender set, not the threshold value.
type ChangeFunc func(cfg *Config, levelOnly bool)

// Store holds exactly one Config value, readable as an atomic
// snapshot by any number of goroutines. Mutators serialize on an
// internal mutex and publish by full-value replacement.
type Store struct {
	cfg       atomic.Pointer[Config]
	mu        sync.Mutex // serializes mutators and observers
	observers []ChangeFunc
}

// NewStore validates cfg and creates a store holding it. The caller's
// value is cloned before validation, so published snapshots never
// alias caller-owned maps or slices.
func NewStore(cfg *Config) (*Store, error) {
	if cfg == nil {
		cfg = Default()
	}
	cfg = cfg.clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Store{}
	s.cfg.Store(cfg)
	return s, nil
}

// Config returns the current snapshot. Never nil, never partially
// written.
func (s *Store) Config() *Config {
	return s.cfg.Load()
}

// OnChange registers a change observer and invokes it immediately
// with the current snapshot, under the mutator lock. Registration and
// the observer's initial derived-state build therefore cannot race
// with a concurrent mutation: the observer sees either the snapshot
// it was handed here or a later one, never a missed change. Any
// number of observers may register; each fires on every mutation.
func (s *Store) OnChange(fn ChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
	fn(s.cfg.Load(), false)
}

// publish stores the new snapshot and notifies, under s.mu.
func (s *Store) publish(cfg *Config, levelOnly bool) {
	s.cfg.Store(cfg)
	for _, fn := range s.observers {
		fn(cfg, levelOnly)
	}
}

// SetPath performs a structural update at a dotted key path, e.g.
//
//	SetPath("currentLevel", core.DebugLevel)
//	SetPath("appenders.console.enabled", false)
//	SetPath("sharedAppenderConfig.team", "infra")
//
// and publishes the resulting snapshot.
func (s *Store) SetPath(path string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.cfg.Load().clone()
	levelOnly, err := applyPath(cfg, path, value)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.publish(cfg, levelOnly)
	return nil
}

// Merge deep-merges the partials into the current value, later
// partials overriding earlier ones, and publishes the result.
func (s *Store) Merge(partials ...Partial) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.cfg.Load().clone()
	levelOnly := true
	for _, p := range partials {
		p.apply(cfg)
		if !p.levelOnly() {
			levelOnly = false
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.publish(cfg, levelOnly)
	return nil
}

// Partial is a deep-mergeable fragment of a Config. Nil fields keep
// the existing value; map fields merge per key, sequence fields
// replace wholesale.
type Partial struct {
	Level                *core.Level
	NamespaceWhitelist   []string
	NamespaceBlacklist   []string
	Middleware           []core.Middleware
	TimestampPattern     *string
	TimestampLocale      *string
	SharedAppenderConfig map[string]any
	Appenders            map[string]appender.Spec
}

func (p Partial) apply(cfg *Config) {
	if p.Level != nil {
		cfg.Level = *p.Level
	}
	if p.NamespaceWhitelist != nil {
		cfg.NamespaceWhitelist = append([]string(nil), p.NamespaceWhitelist...)
	}
	if p.NamespaceBlacklist != nil {
		cfg.NamespaceBlacklist = append([]string(nil), p.NamespaceBlacklist...)
	}
	if p.Middleware != nil {
		cfg.Middleware = append([]core.Middleware(nil), p.Middleware...)
	}
	if p.TimestampPattern != nil {
		cfg.TimestampPattern = *p.TimestampPattern
	}
	if p.TimestampLocale != nil {
		cfg.TimestampLocale = *p.TimestampLocale
	}
	for k, v := range p.SharedAppenderConfig {
		if cfg.SharedAppenderConfig == nil {
			cfg.SharedAppenderConfig = make(map[string]any)
		}
		cfg.SharedAppenderConfig[k] = v
	}
	for id, spec := range p.Appenders {
		if cfg.Appenders == nil {
			cfg.Appenders = make(map[string]appender.Spec)
		}
		if spec.ID == "" {
			spec.ID = id
		}
		cfg.Appenders[id] = spec
	}
}

func (p Partial) levelOnly() bool {
	return p.NamespaceWhitelist == nil &&
		p.NamespaceBlacklist == nil &&
		p.Middleware == nil &&
		p.TimestampPattern == nil &&
		p.TimestampLocale == nil &&
		p.SharedAppenderConfig == nil &&
		p.Appenders == nil
}

// applyPath mutates the (cloned) cfg at the given path and reports
// whether the change touched only the bare threshold.
func applyPath(cfg *Config, path string, value any) (levelOnly bool, err error) {
	head, rest, _ := strings.Cut(path, ".")
	switch head {
	case "currentLevel":
		lvl, err := asLevel(value)
		if err != nil {
			return false, err
		}
		cfg.Level = lvl
		return true, nil

	case "namespaceWhitelist":
		v, err := asStringSlice(value)
		if err != nil {
			return false, fmt.Errorf("config: %s: %w", path, err)
		}
		cfg.NamespaceWhitelist = v
		return false, nil

	case "namespaceBlacklist":
		v, err := asStringSlice(value)
		if err != nil {
			return false, fmt.Errorf("config: %s: %w", path, err)
		}
		cfg.NamespaceBlacklist = v
		return false, nil

	case "middleware":
		v, ok := value.([]core.Middleware)
		if !ok {
			return false, fmt.Errorf("config: %s: want []core.Middleware, got %T", path, value)
		}
		cfg.Middleware = append([]core.Middleware(nil), v...)
		return false, nil

	case "timestampPattern":
		v, ok := value.(string)
		if !ok {
			return false, fmt.Errorf("config: %s: want string, got %T", path, value)
		}
		cfg.TimestampPattern = v
		return false, nil

	case "timestampLocale":
		v, ok := value.(string)
		if !ok {
			return false, fmt.Errorf("config: %s: want string, got %T", path, value)
		}
		cfg.TimestampLocale = v
		return false, nil

	case "sharedAppenderConfig":
		if rest == "" {
			v, ok := value.(map[string]any)
			if !ok {
				return false, fmt.Errorf("config: %s: want map[string]any, got %T", path, value)
			}
			cfg.SharedAppenderConfig = v
			return false, nil
		}
		if cfg.SharedAppenderConfig == nil {
			cfg.SharedAppenderConfig = make(map[string]any)
		}
		cfg.SharedAppenderConfig[rest] = value
		return false, nil

	case "appenders":
		return false, applyAppenderPath(cfg, rest, value)

	default:
		return false, fmt.Errorf("config: unknown path %q", path)
	}
}

func applyAppenderPath(cfg *Config, rest string, value any) error {
	if rest == "" {
		return fmt.Errorf("config: appenders path requires an id")
	}
	id, field, hasField := strings.Cut(rest, ".")

	if !hasField {
		spec, ok := value.(appender.Spec)
		if !ok {
			return fmt.Errorf("config: appenders.%s: want appender.Spec, got %T", id, value)
		}
		if spec.ID == "" {
			spec.ID = id
		}
		if cfg.Appenders == nil {
			cfg.Appenders = make(map[string]appender.Spec)
		}
		cfg.Appenders[id] = spec
		return nil
	}

	spec, ok := cfg.Appenders[id]
	if !ok {
		return fmt.Errorf("config: no appender %q", id)
	}
	switch field {
	case "enabled":
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("config: appenders.%s.enabled: want bool, got %T", id, value)
		}
		spec.Enabled = v
	case "minLevel":
		lvl, err := asLevel(value)
		if err != nil {
			return err
		}
		spec.MinLevel = lvl
	case "async":
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("config: appenders.%s.async: want bool, got %T", id, value)
		}
		spec.Async = v
	case "rateLimitWindowMs":
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("config: appenders.%s.rateLimitWindowMs: want int, got %T", id, value)
		}
		spec.RateLimitWindow = time.Duration(v) * time.Millisecond
	default:
		return fmt.Errorf("config: unknown appender field %q", field)
	}
	cfg.Appenders[id] = spec
	return nil
}

func asLevel(value any) (core.Level, error) {
	switch v := value.(type) {
	case core.Level:
		if !v.Valid() {
			return core.Unset, fmt.Errorf("config: %w: %d", core.ErrInvalidLevel, v)
		}
		return v, nil
	case string:
		return core.ParseLevel(v)
	case nil:
		return core.Unset, nil
	default:
		return core.Unset, fmt.Errorf("config: %w: %T", core.ErrInvalidLevel, value)
	}
}

func asStringSlice(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...), nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("want []string, got %T", value)
	}
}
