// Package config holds the engine's single versioned configuration
// value and the store that publishes it.
//
// A Config is immutable once published. The Store exposes it through
// an atomic pointer, so readers always see a complete snapshot and
// never a partially-written one. The two mutators, SetPath and Merge,
// clone the current value, edit the clone, validate it, and swap it
// in; the registered ChangeFunc then runs synchronously before the
// mutator returns, which is how the dispatcher rebuilds its cache and
// namespace filter in step with the config.
//
// Changes that touch only the bare threshold are flagged levelOnly so
// observers can skip the rebuild: the dispatch cache is keyed by
// level but derived from the appender set, not from the threshold
// value.
//
// Load and LoadFile read the YAML configuration surface, producing a
// Partial for Merge. File-based appender entries reference the
// built-in console and file delivery types, since delivery functions
// cannot be expressed in YAML.
package config
