package debug

// Debug stats logger. Started only when config.Debug is true.
// Emits goroutine count, stack usage and the capture service counters at a
// fixed interval, to confirm that capture workers do not pile up.

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"

	"github.com/soocke/emushot/domain/screenshot"
)

// StatsSource exposes the capture counters to log.
type StatsSource interface {
	Stats() screenshot.CaptureStats
}

// StartStatsLogger launches a ticker that logs goroutine count, stack memory
// and capture stats until ctx is done. A nil src logs runtime data only.
func StartStatsLogger(ctx context.Context, interval time.Duration, logger *slog.Logger, src StatsSource) {
	if interval <= 0 {
		interval = time.Second
	}
	if logger == nil {
		return
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
			attrs := []any{
				slog.Uint64("goroutines", goroutineCount(samples[0])),
			}
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			attrs = append(attrs,
				slog.Uint64("stack_inuse", ms.StackInuse),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
			)
			if src != nil {
				attrs = append(attrs, captureAttrs(src.Stats())...)
			}
			logger.Info("capture.stats", attrs...)
		}
	}()
}

func goroutineCount(s metrics.Sample) uint64 {
	if s.Value.Kind() != metrics.KindUint64 {
		return uint64(runtime.NumGoroutine())
	}
	return s.Value.Uint64()
}

func captureAttrs(st screenshot.CaptureStats) []any {
	return []any{
		slog.String("state", st.State.String()),
		slog.Uint64("requests", st.Requests),
		slog.Uint64("captures", st.Captures),
		slog.Uint64("rejected", st.Rejected),
		slog.Uint64("failed", st.Failed),
		slog.Uint64("reallocs", st.Reallocs),
		slog.Duration("avg_encode", st.AvgEncode),
	}
}
