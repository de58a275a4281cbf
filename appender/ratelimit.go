package appender

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/logforge/logforge/core"
)

// timeNow is a variable to allow overriding time.Now in tests
var timeNow = time.Now

// sweepEvery is the inverse probability of an opportunistic sweep of
// expired rate-limit entries (1-in-1000 per delivery attempt). The
// sweep is a best-effort bound on the key map, not a hard cap; keys
// are naturally bounded by the cardinality of distinct
// (namespace, first-arg) pairs seen within a window.
const sweepEvery = 1000

// rateLimiter tracks the last delivery timestamp per
// (namespace, first-argument) key and suppresses repeats inside the
// configured window.
type rateLimiter struct {
	window time.Duration
	mu     sync.Mutex
	last   map[string]time.Time
}

func newRateLimiter(window time.Duration) *rateLimiter {
	return &rateLimiter{
		window: window,
		last:   make(map[string]time.Time),
	}
}

// allow reports whether the record may be delivered, recording the
// delivery timestamp when it is. Lookups never fail; a missing entry
// simply means "not limited".
func (l *rateLimiter) allow(rec *core.Record) bool {
	key := rec.Namespace + "\x1f" + firstArgKey(rec)
	now := timeNow()

	l.mu.Lock()
	defer l.mu.Unlock()

	if last, ok := l.last[key]; ok && now.Sub(last) <= l.window {
		return false
	}
	l.last[key] = now
	if rand.Intn(sweepEvery) == 0 {
		l.sweep(now)
	}
	return true
}

// sweep drops entries whose window has already expired. Called under
// l.mu.
func (l *rateLimiter) sweep(now time.Time) {
	for k, t := range l.last {
		if now.Sub(t) > l.window {
			delete(l.last, k)
		}
	}
}

// firstArgKey derives the identity component of the rate-limit key
// from the record's first argument (or its split-out error).
func firstArgKey(rec *core.Record) string {
	if rec.Err != nil {
		return rec.Err.Error()
	}
	if len(rec.Args) == 0 {
		return rec.Format
	}
	switch v := rec.Args[0].(type) {
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
