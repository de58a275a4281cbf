package appender

import (
	"io"
	"os"
	"sync"

	"github.com/logforge/logforge/core"
)

// Console returns a deliver function that writes each record's
// pre-rendered default output line to w. Writes are serialized with a
// mutex so the deliver function is safe for concurrent use by a
// synchronous fan-out.
func Console(w io.Writer) func(*core.Record) error {
	if w == nil {
		w = os.Stdout
	}
	var mu sync.Mutex
	return func(rec *core.Record) error {
		mu.Lock()
		defer mu.Unlock()
		_, err := io.WriteString(w, rec.DefaultOutput+"\n")
		return err
	}
}
