package core

// Middleware transforms or filters a record before fan-out. A
// middleware must return either a (possibly modified copy of the)
// record, or nil to suppress the event entirely. Returning nil is the
// defined filtering mechanism, not an error.
type Middleware func(*Record) *Record
