// Package dispatch is the engine's entry point: it decides per call
// whether to emit, builds the record, and fans it out to every
// eligible appender.
//
// The decision machinery is precomputed. On every config change (other
// than a bare threshold change) the dispatcher derives, from the new
// snapshot, a fresh namespace filter and a dispatch cache holding one
// combined fan-out function per level — or a nil marker when no
// appender is eligible at that level. Both are swapped in atomically
// as whole values; concurrent log calls may briefly run against the
// previous generation, which is accepted eventual consistency, never
// corruption.
//
// A disabled log call costs one level comparison and one memoized
// namespace lookup. An enabled one builds the record, resolves the
// shared appender config, cached hostname, and formatted timestamp,
// runs the middleware chain (right-to-left composition, nil
// suppresses), renders the message lazily, and invokes every wrapped
// appender. Appender failures are isolated per appender — the
// fragile alternative, letting one appender's failure abort the rest
// of the fan-out, was rejected deliberately.
//
// The effective threshold resolves with fixed precedence: the
// LOG_LEVEL environment variable read at construction, then a scoped
// OverrideLevel, then the live config level.
package dispatch
