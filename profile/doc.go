// Package profile reports nested timing statistics through the normal
// dispatch path.
//
// A Profile invocation establishes a profiling context carried in the
// context.Context; nested Span calls on the same call chain append
// wall-clock samples to it, while unrelated concurrent chains never
// interfere. When logging is disabled for the report's level and
// namespace, Profile degrades to a plain call of the body — and a Span
// with no active context is a direct call too, so unprofiled code
// paths pay nothing.
//
// Elapsed times are recorded in deferred blocks: a panicking body
// still gets its span sample and a final report, and the panic
// propagates unchanged. The report is a fixed-width table sorted
// descending by total time (or another field via RenderBy), with each
// span's share of the outer wall-clock time and an accounted-time
// footer; the raw stats map rides on the dispatched record for
// appenders that consume it programmatically.
package profile
