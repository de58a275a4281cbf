package dispatch

import (
	"sort"

	"github.com/logforge/logforge/appender"
	"github.com/logforge/logforge/config"
	"github.com/logforge/logforge/core"
	"github.com/logforge/logforge/format"
	"github.com/logforge/logforge/metrics"
)

// fanout is the combined delivery function for one level: every
// enabled, eligible appender plus the record-resolution and middleware
// work shared by all of them.
type fanout struct {
	appenders  []*appender.Wrapped
	middleware core.Middleware
	layout     format.Layout
	shared     map[string]any
}

// cache maps each level to its fan-out, or nil when no appender is
// eligible — the dispatcher then short-circuits before even building a
// record. The whole value is derived from one Config snapshot and is
// always safe to discard and regenerate.
type cache struct {
	entries [int(core.ReportLevel) + 1]*fanout
	wrapped []*appender.Wrapped
}

// buildCache wraps each enabled appender spec exactly once, then
// computes the eligible set per level in ascending severity order.
func buildCache(cfg *config.Config, errs chan<- error) *cache {
	c := &cache{}
	layout := format.Layout{Pattern: cfg.TimestampPattern, Locale: cfg.TimestampLocale}
	mw := composeMiddleware(cfg.Middleware)

	ids := make([]string, 0, len(cfg.Appenders))
	for id := range cfg.Appenders {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	byID := make(map[string]*appender.Wrapped, len(cfg.Appenders))
	for _, id := range ids {
		spec := cfg.Appenders[id]
		if !spec.Enabled {
			continue
		}
		w, err := appender.Wrap(spec, errs)
		if err != nil {
			// Specs are validated at registration; this only guards a
			// config built without the store.
			continue
		}
		byID[id] = w
		c.wrapped = append(c.wrapped, w)
	}

	for _, level := range core.Levels() {
		var eligible []*appender.Wrapped
		for _, id := range ids {
			spec := cfg.Appenders[id]
			w, ok := byID[id]
			if !ok {
				continue
			}
			if spec.MinLevel != core.Unset {
				if suff, err := core.Sufficient(level, spec.MinLevel); err != nil || !suff {
					continue
				}
			}
			eligible = append(eligible, w)
		}
		if len(eligible) == 0 {
			continue
		}
		c.entries[level] = &fanout{
			appenders:  eligible,
			middleware: mw,
			layout:     layout,
			shared:     cfg.SharedAppenderConfig,
		}
	}
	return c
}

// close drains and stops every wrapped appender of this cache
// generation.
func (c *cache) close() {
	for _, w := range c.wrapped {
		_ = w.Close()
	}
}

// dispatch resolves the record (shared config, hostname, timestamp),
// runs the middleware chain, renders the message lazily, and invokes
// every appender. Appender failures are isolated per appender by the
// wrapper, so one failing appender never prevents delivery to the
// rest.
func (f *fanout) dispatch(rec *core.Record) {
	rec.Shared = f.shared
	rec.Hostname = core.Hostname()
	rec.Timestamp = format.Timestamp(rec.Time, f.layout)

	if f.middleware != nil {
		rec = f.middleware(rec)
		if rec == nil {
			metrics.SuppressedByMiddleware.Inc()
			return
		}
	}

	rec.Message = rec.RenderMessage()
	rec.DefaultOutput = format.Line{
		Timestamp: rec.Timestamp,
		Hostname:  rec.Hostname,
		Level:     rec.Level.String(),
		Namespace: rec.Namespace,
		Message:   rec.Message,
		Err:       rec.Err,
		Caller:    format.CallerRef(rec.Caller.ShortFile, rec.Caller.Line),
	}.Render()

	metrics.EventsDispatched.WithLabelValues(rec.Level.String()).Inc()
	for _, w := range f.appenders {
		w.Dispatch(rec)
	}
}
