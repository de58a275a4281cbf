package dispatch

import "github.com/logforge/logforge/core"

// Per-level convenience methods over Log/Logf. These are plain
// wrappers around the level-parameterized entry points; no code
// generation, just a fixed surface.

// Trace logs a print-style event at TraceLevel
func (d *Dispatcher) Trace(ns string, args ...any) { _ = d.log(core.TraceLevel, ns, "", args, nil) }

// Debug logs a print-style event at DebugLevel
func (d *Dispatcher) Debug(ns string, args ...any) { _ = d.log(core.DebugLevel, ns, "", args, nil) }

// Info logs a print-style event at InfoLevel
func (d *Dispatcher) Info(ns string, args ...any) { _ = d.log(core.InfoLevel, ns, "", args, nil) }

// Warn logs a print-style event at WarnLevel
func (d *Dispatcher) Warn(ns string, args ...any) { _ = d.log(core.WarnLevel, ns, "", args, nil) }

// Error logs a print-style event at ErrorLevel
func (d *Dispatcher) Error(ns string, args ...any) { _ = d.log(core.ErrorLevel, ns, "", args, nil) }

// Fatal logs a print-style event at FatalLevel. The dispatcher does
// not terminate the process; that policy belongs to the application.
func (d *Dispatcher) Fatal(ns string, args ...any) { _ = d.log(core.FatalLevel, ns, "", args, nil) }

// Report logs a print-style event at ReportLevel
func (d *Dispatcher) Report(ns string, args ...any) { _ = d.log(core.ReportLevel, ns, "", args, nil) }

// Tracef logs a printf-style event at TraceLevel
func (d *Dispatcher) Tracef(ns, format string, args ...any) {
	_ = d.log(core.TraceLevel, ns, format, args, nil)
}

// Debugf logs a printf-style event at DebugLevel
func (d *Dispatcher) Debugf(ns, format string, args ...any) {
	_ = d.log(core.DebugLevel, ns, format, args, nil)
}

// Infof logs a printf-style event at InfoLevel
func (d *Dispatcher) Infof(ns, format string, args ...any) {
	_ = d.log(core.InfoLevel, ns, format, args, nil)
}

// Warnf logs a printf-style event at WarnLevel
func (d *Dispatcher) Warnf(ns, format string, args ...any) {
	_ = d.log(core.WarnLevel, ns, format, args, nil)
}

// Errorf logs a printf-style event at ErrorLevel
func (d *Dispatcher) Errorf(ns, format string, args ...any) {
	_ = d.log(core.ErrorLevel, ns, format, args, nil)
}

// Fatalf logs a printf-style event at FatalLevel
func (d *Dispatcher) Fatalf(ns, format string, args ...any) {
	_ = d.log(core.FatalLevel, ns, format, args, nil)
}

// Reportf logs a printf-style event at ReportLevel
func (d *Dispatcher) Reportf(ns, format string, args ...any) {
	_ = d.log(core.ReportLevel, ns, format, args, nil)
}
