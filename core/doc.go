// Package core defines the shared types used across the logforge engine.
//
// It provides the fixed Level scale used for severity filtering, the
// Record type that represents a single log event, and the Middleware
// contract applied to records before fan-out.
//
// The level scale is a total order: Compare(a, b) is score(a)-score(b),
// where score is the level's position on the scale and the zero value
// Unset scores 0. Values outside the scale fail fast with
// ErrInvalidLevel rather than being coerced.
//
// Records are built fresh per call and treated as immutable once
// constructed. Message text is rendered lazily by the dispatch fan-out
// so that events filtered out by middleware never pay formatting cost.
//
// The package also caches the process hostname with a background
// refresh, so building a record never blocks on resolution; failed
// lookups degrade to the UnknownHostname sentinel.
package core
