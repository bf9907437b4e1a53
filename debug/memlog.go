package debug

// Memory periodic logger enabled when config.Debug is true. Capture drivers
// hold native frame buffers, so the working set is logged next to the Go heap
// and the live track count.

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// StartMemLogger logs memory stats every interval until ctx is done.
// Failures to query the working set are logged once and suppressed.
func StartMemLogger(ctx context.Context, interval time.Duration, logger *slog.Logger, tracks TrackCounter) {
	if logger == nil {
		return
	}
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var rssErrLogged bool
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			rss, err := workingSet()
			if err != nil && !rssErrLogged {
				logger.Warn("memlog: working set query failed", slog.Any("error", err))
				rssErrLogged = true
			}
			logger.Info("memstats", memAttrs(rss, tracks)...)
		}
	}()
}

func memAttrs(rss uint64, tracks TrackCounter) []any {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return []any{
		slog.Int("goroutines", runtime.NumGoroutine()),
		slog.Uint64("heap_alloc", ms.HeapAlloc),
		slog.Uint64("heap_inuse", ms.HeapInuse),
		slog.Uint64("heap_idle", ms.HeapIdle),
		slog.Uint64("heap_sys", ms.HeapSys),
		slog.Uint64("next_gc", ms.NextGC),
		slog.Uint64("rss", rss),
		slog.Uint64("num_gc", uint64(ms.NumGC)),
		slog.Int("live_tracks", liveTracks(tracks)),
	}
}

func liveTracks(tracks TrackCounter) int {
	if tracks == nil {
		return 0
	}
	return tracks()
}
