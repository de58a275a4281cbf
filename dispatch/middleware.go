package dispatch

import "github.com/logforge/logforge/core"

// composeMiddleware folds the configured middleware into a single
// transform via right-to-left functional composition: the
// last-registered middleware sees the record first. The first stage to
// return nil halts the chain; no further stages or appenders run.
func composeMiddleware(mw []core.Middleware) core.Middleware {
	if len(mw) == 0 {
		return nil
	}
	return func(rec *core.Record) *core.Record {
		for i := len(mw) - 1; i >= 0; i-- {
			rec = mw[i](rec)
			if rec == nil {
				return nil
			}
		}
		return rec
	}
}
