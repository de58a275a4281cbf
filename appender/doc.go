// Package appender defines the appender contract and the wrapper that
// enforces per-appender delivery policies.
//
// An appender is just a Spec: an id, an enablement flag, an optional
// minimum level, and a Deliver function. The engine never calls
// Deliver directly; each spec is wrapped once per dispatch-cache
// rebuild into a Wrapped value that layers, innermost to outermost,
// error isolation, rate limiting, and asynchronous delivery.
//
// Rate limiting keys on the (namespace, first argument) pair and keeps
// a last-delivery timestamp per key. The key map is swept
// opportunistically (1-in-1000 deliveries) rather than on a schedule,
// which bounds it well enough in practice without a background
// goroutine per appender.
//
// Async appenders get a dedicated single-consumer worker with an
// unbounded queue. Ordering is preserved per appender, not across
// appenders. A delivery failure — returned error or panic — is counted,
// optionally surfaced on a side error channel, and never stops the
// worker or reaches the caller.
//
// Console and File provide deliver functions for the common cases,
// writing the record's pre-rendered DefaultOutput line.
package appender
