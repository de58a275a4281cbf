package benchmark

import (
	"context"
	"testing"

	"github.com/logforge/logforge/appender"
	"github.com/logforge/logforge/config"
	"github.com/logforge/logforge/core"
	"github.com/logforge/logforge/dispatch"
	"github.com/logforge/logforge/profile"
)

func nopDeliver(rec *core.Record) error {
	_ = len(rec.DefaultOutput)
	return nil
}

func newDispatcher(b *testing.B, cfg *config.Config) *dispatch.Dispatcher {
	b.Helper()
	store, err := config.NewStore(cfg)
	if err != nil {
		b.Fatal(err)
	}
	d, err := dispatch.New(store)
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = d.Close() })
	return d
}

func baseConfig() *config.Config {
	return &config.Config{
		Level: core.InfoLevel,
		Appenders: map[string]appender.Spec{
			"noop": {ID: "noop", Enabled: true, Deliver: nopDeliver},
		},
	}
}

// The disabled path is the one that matters most: a suppressed call
// should cost one comparison and one memoized predicate lookup.
func BenchmarkLog_DisabledByLevel(b *testing.B) {
	d := newDispatcher(b, baseConfig())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d.Debug("app.core", "suppressed message")
	}
}

func BenchmarkLog_DisabledByNamespace(b *testing.B) {
	cfg := baseConfig()
	cfg.NamespaceBlacklist = []string{"app.noisy.*"}
	d := newDispatcher(b, cfg)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d.Info("app.noisy.loop", "suppressed message")
	}
}

func BenchmarkLog_EnabledSync(b *testing.B) {
	d := newDispatcher(b, baseConfig())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d.Info("app.core", "delivered message")
	}
}

func BenchmarkLog_EnabledAsync(b *testing.B) {
	cfg := baseConfig()
	spec := cfg.Appenders["noop"]
	spec.Async = true
	cfg.Appenders["noop"] = spec
	d := newDispatcher(b, cfg)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d.Info("app.core", "delivered message")
	}
}

func BenchmarkLogf_Enabled(b *testing.B) {
	d := newDispatcher(b, baseConfig())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d.Infof("app.core", "request %d handled in %dms", i, 7)
	}
}

func BenchmarkLog_Parallel(b *testing.B) {
	d := newDispatcher(b, baseConfig())
	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			d.Info("app.core", "parallel message")
		}
	})
}

func BenchmarkEnabledCheck(b *testing.B) {
	cfg := baseConfig()
	cfg.NamespaceWhitelist = []string{"app.*"}
	d := newDispatcher(b, cfg)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = d.Enabled(core.DebugLevel, "app.core")
	}
}

// Span with no active profiling context must be a direct call.
func BenchmarkSpan_Inactive(b *testing.B) {
	ctx := context.Background()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		profile.Span(ctx, "unprofiled", func() {})
	}
}
