package debug

// Periodic runtime logger, started only when config.Debug is true. Besides
// goroutine and stack figures it reports how many capture tracks are live,
// which makes leaked tracks visible next to leaked reader goroutines.

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// TrackCounter reports the number of live capture tracks.
type TrackCounter func() int

// StartGoroutineLogger launches a ticker that logs goroutine count, stack
// memory and live tracks until ctx is done.
func StartGoroutineLogger(ctx context.Context, interval time.Duration, logger *slog.Logger, tracks TrackCounter) {
	if logger == nil {
		return
	}
	if interval <= 0 {
		interval = time.Second
	}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
			logger.Info("goroutine-stacks", goroutineAttrs(samples, tracks)...)
		}
	}()
}

func goroutineAttrs(samples []metrics.Sample, tracks TrackCounter) []any {
	metrics.Read(samples)
	var goroutines uint64
	if samples[0].Value.Kind() == metrics.KindUint64 {
		goroutines = samples[0].Value.Uint64()
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	attrs := []any{
		slog.Uint64("goroutines", goroutines),
		slog.Uint64("stack_inuse", ms.StackInuse),
		slog.Uint64("stack_sys", ms.StackSys),
		slog.Uint64("heap_alloc", ms.HeapAlloc),
	}
	if tracks != nil {
		attrs = append(attrs, slog.Int("live_tracks", tracks()))
	}
	return attrs
}
