package appender

import (
	"sync"
	"time"

	"github.com/logforge/logforge/core"
)

// asyncWorker is a single-consumer delivery queue for one appender.
// The queue is unbounded: a persistently overloaded appender grows
// memory without limit. This is a documented limitation, accepted so
// that a slow appender never blocks the caller or other appenders.
type asyncWorker struct {
	deliver func(*core.Record)

	mu       sync.Mutex
	queue    []*core.Record
	shutdown bool

	wake         chan struct{}
	closed       chan struct{}
	done         chan struct{}
	closeOnce    sync.Once
	drainTimeout time.Duration
}

func newAsyncWorker(deliver func(*core.Record), drainTimeout time.Duration) *asyncWorker {
	w := &asyncWorker{
		deliver:      deliver,
		wake:         make(chan struct{}, 1),
		closed:       make(chan struct{}),
		done:         make(chan struct{}),
		drainTimeout: drainTimeout,
	}
	go w.run()
	return w
}

// enqueue appends the record and nudges the worker. After close,
// deliveries run synchronously on the caller so nothing is lost while
// shutting down. The shutdown check and the append share the queue
// mutex: a record is either appended before shutdown flips, and so
// visible to the worker's final drain, or delivered here.
func (w *asyncWorker) enqueue(rec *core.Record) {
	w.mu.Lock()
	if w.shutdown {
		w.mu.Unlock()
		w.deliver(rec)
		return
	}
	w.queue = append(w.queue, rec)
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// take swaps out the pending batch, preserving submission order.
func (w *asyncWorker) take() []*core.Record {
	w.mu.Lock()
	batch := w.queue
	w.queue = nil
	w.mu.Unlock()
	return batch
}

// run processes deliveries strictly in submission order. The deliver
// function owns error isolation, so one bad item never stops the
// worker.
func (w *asyncWorker) run() {
	defer close(w.done)

	for {
		select {
		case <-w.wake:
			for _, rec := range w.take() {
				w.deliver(rec)
			}
		case <-w.closed:
			// Drain remaining entries with timeout
			deadline := time.Now().Add(w.drainTimeout)
			for _, rec := range w.take() {
				if time.Now().After(deadline) {
					return
				}
				w.deliver(rec)
			}
			return
		}
	}
}

// close stops the worker, draining queued deliveries up to the drain
// timeout, and waits for it to exit. shutdown flips under the queue
// mutex before closed is signalled, so every record a racing enqueue
// managed to append is in the queue by the time the worker's final
// take runs.
func (w *asyncWorker) close() {
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.shutdown = true
		w.mu.Unlock()
		close(w.closed)
	})
	<-w.done
}
