package benchmark

import (
	"log/slog"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/dlog/core"
	"github.com/philipp01105/dlog/slogbridge"
	"github.com/philipp01105/dlog/transport"
	"github.com/philipp01105/dlog/zapbridge"
)

func newTransport(b *testing.B, tier core.Tier) *transport.Transport {
	b.Helper()
	tr, err := transport.New(transport.Config{
		Tier:     tier,
		Port:     newNoopPort(),
		Capacity: 4096,
	})
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { tr.Close() })
	return tr
}

// Benchmark transport creation and teardown
func BenchmarkTransportCreation(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tr, err := transport.New(transport.Config{
			Tier: core.TierFull,
			Port: newNoopPort(),
		})
		if err != nil {
			b.Fatal(err)
		}
		tr.Close()
	}
}

// Benchmark the raw submit path
func BenchmarkLog(b *testing.B) {
	tr := newTransport(b, core.TierFull)
	text := []byte("benchmark message")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tr.Log(core.SeverityError, "bench", text)
	}
}

// Benchmark the convenience string methods
func BenchmarkInfo(b *testing.B) {
	tr := newTransport(b, core.TierFull)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tr.Info("benchmark message")
	}
}

// Benchmark formatted submission
func BenchmarkInfof(b *testing.B) {
	tr := newTransport(b, core.TierFull)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tr.Infof("benchmark message %d", i)
	}
}

// Benchmark a message filtered out by the tier (should be near zero)
func BenchmarkLogFiltered(b *testing.B) {
	tr := newTransport(b, core.TierErrors)
	text := []byte("benchmark message")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tr.Log(core.SeverityInfo, "bench", text)
	}
}

// Benchmark submission through a named producer handle
func BenchmarkProducerLog(b *testing.B) {
	tr := newTransport(b, core.TierFull)
	p := tr.Producer("motor")
	text := []byte("benchmark message")

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Log(core.SeverityError, text)
	}
}

// Benchmark the drop path on a saturated queue
func BenchmarkLogSaturated(b *testing.B) {
	// A stalled port keeps the queue full so every submit exercises the
	// overflow outcome handling.
	tr, err := transport.New(transport.Config{
		Tier:         core.TierFull,
		Port:         &stalledPort{},
		Capacity:     8,
		DrainTimeout: 1,
	})
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { tr.Close() })
	text := []byte("benchmark message")

	for i := 0; i < 16; i++ {
		tr.Log(core.SeverityError, "bench", text)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tr.Log(core.SeverityError, "bench", text)
	}
}

// Benchmark concurrent producers
func BenchmarkLogParallel(b *testing.B) {
	tr := newTransport(b, core.TierFull)
	text := []byte("benchmark message")

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			tr.Log(core.SeverityError, "bench", text)
		}
	})
}

// Benchmark the slog adapter end to end
func BenchmarkSlogBridge(b *testing.B) {
	tr := newTransport(b, core.TierFull)
	l := slog.New(slogbridge.New(tr.Producer("svc"), slog.LevelInfo))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("benchmark message", "key", "value")
	}
}

// Benchmark the zap adapter end to end
func BenchmarkZapBridge(b *testing.B) {
	tr := newTransport(b, core.TierFull)
	l := zap.New(zapbridge.NewCore(tr, "svc", zapcore.InfoLevel))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("benchmark message", zap.String("key", "value"))
	}
}

// stalledPort accepts bytes but never completes them.
type stalledPort struct{}

func (stalledPort) Initialize() error { return nil }

func (stalledPort) TransmitByte(b byte) error { return nil }

func (stalledPort) Reset() {}
