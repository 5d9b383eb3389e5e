package debug

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/soocke/emushot/domain/screenshot"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type fixedStats struct{}

func (fixedStats) Stats() screenshot.CaptureStats {
	return screenshot.CaptureStats{Requests: 5, Captures: 4, Rejected: 1, State: screenshot.StateInFlight}
}

func waitFor(t *testing.T, buf *syncBuffer, substr string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(buf.String(), substr) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timeout waiting for %q in %q", substr, buf.String())
}

func TestStartStatsLogger_LogsCaptureCounters(t *testing.T) {
	buf := &syncBuffer{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartStatsLogger(ctx, 10*time.Millisecond, slog.New(slog.NewTextHandler(buf, nil)), fixedStats{})
	waitFor(t, buf, "captures=4")
	if !strings.Contains(buf.String(), "state=in-flight") {
		t.Fatalf("state missing: %s", buf.String())
	}
}

func TestStartMemLogger_RSSErrorLoggedOnce(t *testing.T) {
	buf := &syncBuffer{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rss := func() (uint64, error) { return 0, errors.New("nope") }
	startMemLogger(ctx, 5*time.Millisecond, slog.New(slog.NewTextHandler(buf, nil)), rss)
	waitFor(t, buf, "memstats")
	time.Sleep(30 * time.Millisecond)
	if n := strings.Count(buf.String(), "rss query failed"); n != 1 {
		t.Fatalf("expected one rss warning, got %d", n)
	}
}

func TestStartLoggers_NilLoggerIsNoop(t *testing.T) {
	StartStatsLogger(context.Background(), time.Millisecond, nil, nil)
	StartMemLogger(context.Background(), time.Millisecond, nil)
}
