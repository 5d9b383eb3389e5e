package presenter

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/soocke/emushot/domain/screenshot"
)

// StatsSource exposes capture counters.
type StatsSource interface{ Stats() screenshot.CaptureStats }

// PreviewView shows the last written screenshot and the counters line.
type PreviewView interface {
	UpdatePreview(img image.Image)
	SetStats(text string)
}

// ThumbnailLoader decodes a saved screenshot into a display sized image.
type ThumbnailLoader func(path string) (image.Image, error)

// PreviewPresenter reloads the preview once a new file is complete.
type PreviewPresenter struct {
	stats     StatsSource
	view      PreviewView
	load      ThumbnailLoader
	logger    *slog.Logger
	shownPath string
	lastText  string
}

func NewPreviewPresenter(stats StatsSource, view PreviewView, load ThumbnailLoader, logger *slog.Logger) *PreviewPresenter {
	return &PreviewPresenter{stats: stats, view: view, load: load, logger: logger}
}

// Tick refreshes the counters line and, when the worker finished a new
// file, the preview image.
func (p *PreviewPresenter) Tick() {
	if p == nil || p.stats == nil || p.view == nil {
		return
	}
	st := p.stats.Stats()
	if text := FormatStats(st); text != p.lastText {
		p.lastText = text
		p.view.SetStats(text)
	}
	if st.LastPath == "" || st.LastPath == p.shownPath || st.State == screenshot.StateInFlight || p.load == nil {
		return
	}
	p.shownPath = st.LastPath
	img, err := p.load(st.LastPath)
	if err != nil {
		if p.logger != nil {
			p.logger.Warn("preview load failed", "path", st.LastPath, "error", err)
		}
		return
	}
	p.view.UpdatePreview(img)
}

// FormatStats renders the counters line shown under the preview.
func FormatStats(st screenshot.CaptureStats) string {
	return fmt.Sprintf("Saved: %d  Ignored: %d  Failed: %d  Written: %s",
		st.Captures, st.Rejected, st.Failed+st.Aborted, humanize.Bytes(st.BytesWritten))
}
