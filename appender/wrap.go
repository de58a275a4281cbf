package appender

import (
	"fmt"
	"time"

	"github.com/logforge/logforge/core"
	"github.com/logforge/logforge/metrics"
)

// defaultDrainTimeout bounds how long Close waits for an async
// worker's queued deliveries.
const defaultDrainTimeout = 5 * time.Second

// Wrapped decorates a raw appender with its configured policies, in
// fixed composition order from innermost to outermost: error
// isolation, rate limiting, asynchronous delivery. Async appenders
// therefore apply the rate-limit check on the worker goroutine, at
// delivery time, not at enqueue time. Wrapped values are created once
// per dispatch-cache rebuild and discarded on the next.
type Wrapped struct {
	spec    Spec
	limiter *rateLimiter
	worker  *asyncWorker
	errs    chan<- error
}

// Wrap validates the spec and builds its wrapped form. errs, when
// non-nil, receives delivery failures best-effort (non-blocking send);
// nil means failures are only counted in metrics.
func Wrap(spec Spec, errs chan<- error) (*Wrapped, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	w := &Wrapped{spec: spec, errs: errs}
	if spec.RateLimitWindow > 0 {
		w.limiter = newRateLimiter(spec.RateLimitWindow)
	}
	if spec.Async {
		w.worker = newAsyncWorker(w.deliverLimited, defaultDrainTimeout)
	}
	return w, nil
}

// ID returns the wrapped appender's id.
func (w *Wrapped) ID() string { return w.spec.ID }

// Dispatch hands the record to the worker (async) or delivers it in
// place (sync). It never propagates a delivery failure to the caller.
func (w *Wrapped) Dispatch(rec *core.Record) {
	if w.worker != nil {
		w.worker.enqueue(rec)
		return
	}
	w.deliverLimited(rec)
}

// deliverLimited applies the rate-limit window, then delivers.
func (w *Wrapped) deliverLimited(rec *core.Record) {
	if w.limiter != nil && !w.limiter.allow(rec) {
		metrics.RateLimited.WithLabelValues(w.spec.ID).Inc()
		return
	}
	w.deliverIsolated(rec)
}

// deliverIsolated invokes the raw deliver function with an error
// isolation boundary: errors and panics are counted and surfaced on
// the side channel, never raised past the appender.
func (w *Wrapped) deliverIsolated(rec *core.Record) {
	defer func() {
		if p := recover(); p != nil {
			w.report(fmt.Errorf("appender %q: panic during delivery: %v", w.spec.ID, p))
		}
	}()
	if err := w.spec.Deliver(rec); err != nil {
		w.report(fmt.Errorf("appender %q: %w", w.spec.ID, err))
	}
}

func (w *Wrapped) report(err error) {
	metrics.AppenderErrors.WithLabelValues(w.spec.ID).Inc()
	if w.errs == nil {
		return
	}
	select {
	case w.errs <- err:
	default:
	}
}

// Close stops the async worker, draining queued deliveries up to the
// drain timeout. Synchronous appenders close immediately.
func (w *Wrapped) Close() error {
	if w.worker != nil {
		w.worker.close()
	}
	return nil
}
