package debug

// Heap logger started only when debug is enabled. Decoded source images and
// the PNG bytes fed to Tk photos are the big allocations in this program;
// the periodic sample makes leaks across repeated opens and drags visible.

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// StartHeapLogger logs goroutine count and heap stats every interval until ctx is done.
func StartHeapLogger(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 2 * time.Second
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
			metrics.Read(samples)
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			logger.Debug("heap",
				slog.Uint64("goroutines", samples[0].Value.Uint64()),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
				slog.Uint64("heap_inuse", ms.HeapInuse),
				slog.Uint64("heap_sys", ms.HeapSys),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
			)
		}
	}()
}
