package profile

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/logforge/logforge/core"
	"github.com/logforge/logforge/dispatch"
)

// TotalSpan is the reserved span name recording the outer wall-clock
// time of one Profile invocation.
const TotalSpan = "total elapsed"

// timeNow is a variable to allow overriding time.Now in tests
var timeNow = time.Now

// randFloat is a variable to allow deterministic sampling in tests
var randFloat = rand.Float64

type ctxKey struct{}

// state accumulates span samples for one Profile invocation. It is
// carried in the context, so nested spans on the same call chain share
// it while unrelated concurrent chains never see each other's samples.
type state struct {
	mu      sync.Mutex
	samples map[string][]int64
}

func (s *state) record(name string, elapsed int64) {
	s.mu.Lock()
	s.samples[name] = append(s.samples[name], elapsed)
	s.mu.Unlock()
}

func (s *state) snapshot() map[string][]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string][]int64, len(s.samples))
	for k, v := range s.samples {
		out[k] = append([]int64(nil), v...)
	}
	return out
}

// Span executes body, recording its wall-clock elapsed time under name
// when a profiling context is active on ctx. With no active context
// body runs directly, so unprofiled call sites pay nothing. Elapsed
// time is captured in a deferred block, so it is recorded even when
// body panics — and the panic still propagates normally.
func Span(ctx context.Context, name string, body func()) {
	st, ok := ctx.Value(ctxKey{}).(*state)
	if !ok {
		body()
		return
	}
	start := timeNow()
	defer func() {
		st.record(name, time.Since(start).Nanoseconds())
	}()
	body()
}

// Profiler measures named spans within a profiled call chain and
// reports the aggregated timings through the normal dispatch path.
type Profiler struct {
	d *dispatch.Dispatcher
}

// New creates a Profiler reporting through d.
func New(d *dispatch.Dispatcher) *Profiler {
	return &Profiler{d: d}
}

// Profile establishes a fresh profiling context and runs body inside
// an outer span named TotalSpan. When logging is not enabled for the
// level and namespace, body runs directly with no context — the
// zero-overhead contract. Once body finishes, per-span statistics are
// computed and a formatted report is dispatched at the given level,
// with the raw stats map attached to the record. The report is
// emitted from a deferred block, so a panicking body still produces
// one while the panic propagates.
func (p *Profiler) Profile(ctx context.Context, level core.Level, ns, name string, body func(context.Context)) error {
	enabled, err := p.d.Enabled(level, ns)
	if err != nil {
		return err
	}
	if !enabled {
		body(ctx)
		return nil
	}

	st := &state{samples: make(map[string][]int64)}
	pctx := context.WithValue(ctx, ctxKey{}, st)

	defer func() {
		stats := ComputeAll(st.snapshot())
		report := Render(name, stats)
		_ = p.d.LogStats(level, ns, stats, report)
	}()

	Span(pctx, TotalSpan, func() { body(pctx) })
	return nil
}

// SamplingProfile profiles with the given probability per invocation;
// otherwise it behaves as an unwrapped call to body.
func (p *Profiler) SamplingProfile(ctx context.Context, probability float64, level core.Level, ns, name string, body func(context.Context)) error {
	if randFloat() >= probability {
		body(ctx)
		return nil
	}
	return p.Profile(ctx, level, ns, name, body)
}
