package appender

import (
	"fmt"
	"os"
	"sync"

	"github.com/logforge/logforge/core"
)

// File returns a deliver function appending default output lines to
// the named file, plus a closer for the underlying handle. The file is
// created if missing.
func File(path string) (deliver func(*core.Record) error, closer func() error, err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("appender: open %s: %w", path, err)
	}
	var mu sync.Mutex
	deliver = func(rec *core.Record) error {
		mu.Lock()
		defer mu.Unlock()
		_, err := f.WriteString(rec.DefaultOutput + "\n")
		return err
	}
	return deliver, f.Close, nil
}
