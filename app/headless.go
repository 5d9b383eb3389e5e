package app

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
)

// RunHeadless emulates frames at the configured interval and requests a
// capture every AutoCaptureEvery frames until CaptureCount captures were
// admitted or ctx is done. It always waits for the last writer.
func RunHeadless(ctx context.Context, c *Container) error {
	cfg := c.Config
	every := cfg.AutoCaptureEvery
	if every <= 0 {
		every = 1
	}
	if cfg.CaptureCount <= 0 {
		return nil
	}
	interval := time.Duration(cfg.FrameIntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	defer c.Service.Wait()

	admitted := 0
	for admitted < cfg.CaptureCount {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			c.Advance()
			frame := c.Session.OnFrame(now)
			if frame%every != 0 {
				continue
			}
			if c.Service.RequestCapture(frame) {
				admitted++
			}
		}
	}
	c.Service.Wait()
	if c.Logger != nil {
		st := c.Service.Stats()
		c.Logger.Info("headless run finished",
			"captures", st.Captures,
			"failed", st.Failed,
			"rejected", st.Rejected,
			"written", humanize.Bytes(st.BytesWritten),
			"last", st.LastPath,
		)
	}
	return nil
}
