package core

import (
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// UnknownHostname is the sentinel used when hostname resolution fails.
// Lookups never surface an error to the dispatch path.
const UnknownHostname = "UnknownHost"

var (
	hostnameOnce    sync.Once
	hostnameCached  atomic.Pointer[string]
	hostnameRefresh = 60 * time.Second
)

// startHostnameCache resolves the hostname once, then refreshes it
// from a background goroutine so that the dispatch path never blocks
// on resolution. The goroutine runs for the lifetime of the process;
// this is intentional because logging typically spans the entire
// application lifecycle.
func startHostnameCache() {
	h := resolveHostname()
	hostnameCached.Store(&h)
	go func() {
		ticker := time.NewTicker(hostnameRefresh)
		for range ticker.C {
			h := resolveHostname()
			hostnameCached.Store(&h)
		}
	}()
}

func resolveHostname() string {
	h, err := os.Hostname()
	if err != nil || h == "" {
		return UnknownHostname
	}
	return h
}

// Hostname returns the cached hostname, starting the cache on first
// use. The value is at most 60 seconds stale.
func Hostname() string {
	hostnameOnce.Do(startHostnameCache)
	return *hostnameCached.Load()
}
