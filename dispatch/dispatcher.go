package dispatch

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/logforge/logforge/config"
	"github.com/logforge/logforge/core"
	"github.com/logforge/logforge/filter"
	"github.com/logforge/logforge/metrics"
)

// EnvLevelVar is the environment variable that, when set at process
// start, fixes the effective threshold and takes precedence over all
// runtime configuration.
const EnvLevelVar = "LOG_LEVEL"

// lookupEnv is a variable to allow overriding os.LookupEnv in tests
var lookupEnv = os.LookupEnv

// Dispatcher is the engine's entry point. Given a level and a
// namespace it decides whether to emit, builds the record, and invokes
// the precomputed fan-out for that level. A Dispatcher is safe for
// arbitrary concurrent callers.
type Dispatcher struct {
	store    *config.Store
	cache    atomic.Pointer[cache]
	filter   atomic.Pointer[filter.Filter]
	override atomic.Pointer[core.Level]

	envLevel core.Level
	hasEnv   bool

	includeCaller bool
	callerSkip    int

	errs chan error
}

// Builder provides a fluent API for building Dispatcher instances
type Builder struct {
	store         *config.Store
	includeCaller bool
	callerSkip    int
	errBuffer     int
}

// NewBuilder creates a new dispatcher builder
func NewBuilder() *Builder {
	return &Builder{
		callerSkip: 3, // Default skip for GetCaller
		errBuffer:  64,
	}
}

// WithStore sets the config store the dispatcher reads and observes
func (b *Builder) WithStore(s *config.Store) *Builder {
	b.store = s
	return b
}

// WithCaller enables call-site file/line capture
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// WithCallerSkip adjusts the stack depth used for caller capture
func (b *Builder) WithCallerSkip(skip int) *Builder {
	b.callerSkip = skip
	return b
}

// WithErrorBuffer sets the capacity of the side error channel
func (b *Builder) WithErrorBuffer(n int) *Builder {
	b.errBuffer = n
	return b
}

// Build creates the Dispatcher, performs the initial cache build, and
// registers for config changes.
func (b *Builder) Build() (*Dispatcher, error) {
	store := b.store
	if store == nil {
		var err error
		store, err = config.NewStore(nil)
		if err != nil {
			return nil, err
		}
	}

	d := &Dispatcher{
		store:         store,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
		errs:          make(chan error, b.errBuffer),
	}
	if v, ok := lookupEnv(EnvLevelVar); ok {
		lvl, err := core.ParseLevel(v)
		if err != nil {
			return nil, fmt.Errorf("dispatch: %s: %w", EnvLevelVar, err)
		}
		if lvl != core.Unset {
			d.envLevel = lvl
			d.hasEnv = true
		}
	}

	// Registration fires the callback immediately under the store's
	// mutator lock, so the initial cache build cannot miss a concurrent
	// config change.
	store.OnChange(d.rebuild)
	return d, nil
}

// New creates a Dispatcher over the given store with default options.
func New(store *config.Store) (*Dispatcher, error) {
	return NewBuilder().WithStore(store).Build()
}

// rebuild derives a fresh dispatch cache and namespace filter from the
// snapshot, swapping each in as a whole value. Concurrent readers see
// either the old or the new cache, never a partial one. Level-only
// changes skip the rebuild entirely: the cache is keyed by level but
// derived from the appender set.
func (d *Dispatcher) rebuild(cfg *config.Config, levelOnly bool) {
	if levelOnly {
		return
	}
	d.filter.Store(filter.Compile(cfg.NamespaceWhitelist, cfg.NamespaceBlacklist))
	old := d.cache.Swap(buildCache(cfg, d.errs))
	if old != nil {
		// Draining the previous generation's async workers can take up
		// to their drain timeout; do it off the mutator's goroutine.
		go old.close()
	}
}

// threshold resolves the effective threshold with fixed precedence:
// process-start env override, then scoped override, then the live
// config level.
func (d *Dispatcher) threshold() core.Level {
	if d.hasEnv {
		return d.envLevel
	}
	if o := d.override.Load(); o != nil {
		return *o
	}
	return d.store.Config().Level
}

// OverrideLevel installs a scoped threshold override and returns the
// restore function:
//
//	defer d.OverrideLevel(core.DebugLevel)()
//
// The env override, when present, still wins.
func (d *Dispatcher) OverrideLevel(level core.Level) (restore func()) {
	prev := d.override.Swap(&level)
	return func() { d.override.Store(prev) }
}

// Enabled reports whether a call at the given level and namespace
// would emit. A disabled call costs one level comparison and one
// memoized predicate lookup; nothing downstream executes.
func (d *Dispatcher) Enabled(level core.Level, ns string) (bool, error) {
	suff, err := core.Sufficient(level, d.threshold())
	if err != nil {
		return false, err
	}
	if !suff {
		return false, nil
	}
	return d.filter.Load().Relevant(ns), nil
}

// Log emits a print-style event: arguments are joined with spaces.
// When the first argument is an error it becomes the record's error
// field instead of a plain argument. An invalid level fails fast with
// core.ErrInvalidLevel.
func (d *Dispatcher) Log(level core.Level, ns string, args ...any) error {
	return d.log(level, ns, "", args, nil)
}

// Logf emits a printf-style event.
func (d *Dispatcher) Logf(level core.Level, ns string, format string, args ...any) error {
	return d.log(level, ns, format, args, nil)
}

// LogStats emits a print-style event whose record carries raw
// profiling statistics for appenders that consume them
// programmatically.
func (d *Dispatcher) LogStats(level core.Level, ns string, stats any, args ...any) error {
	return d.log(level, ns, "", args, stats)
}

func (d *Dispatcher) log(level core.Level, ns, format string, args []any, stats any) error {
	suff, err := core.Sufficient(level, d.threshold())
	if err != nil {
		return err
	}
	if !suff {
		metrics.SuppressedByLevel.Inc()
		return nil
	}
	if !d.filter.Load().Relevant(ns) {
		metrics.SuppressedByNamespace.Inc()
		return nil
	}

	fo := d.cache.Load().entries[level]
	if fo == nil {
		metrics.SuppressedNoAppender.Inc()
		return nil
	}

	rec := &core.Record{
		Time:         time.Now(),
		Namespace:    ns,
		Level:        level,
		ErrorLevel:   level >= core.ErrorLevel,
		Format:       format,
		Args:         args,
		ProfileStats: stats,
	}
	// Print-style calls split a leading error out of the argument
	// list; printf-style arguments all belong to the format string.
	if format == "" && len(args) > 0 {
		if e, ok := args[0].(error); ok && e != nil {
			rec.Err = e
			rec.Args = args[1:]
		}
	}
	if d.includeCaller {
		rec.Caller = core.GetCaller(d.callerSkip)
	}

	fo.dispatch(rec)
	return nil
}

// Errors exposes the side channel carrying isolated appender delivery
// failures. The channel is never closed; reads are optional and
// failures are dropped when nobody listens.
func (d *Dispatcher) Errors() <-chan error {
	return d.errs
}

// Store returns the dispatcher's config store.
func (d *Dispatcher) Store() *config.Store {
	return d.store
}

// Close drains and stops the current generation of async appenders.
func (d *Dispatcher) Close() error {
	if c := d.cache.Load(); c != nil {
		c.close()
	}
	return nil
}
