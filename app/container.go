package app

import (
	"log/slog"
	"time"

	"github.com/soocke/emushot/capture"
	"github.com/soocke/emushot/config"
	"github.com/soocke/emushot/domain/frame"
	"github.com/soocke/emushot/domain/screenshot"
	"github.com/soocke/emushot/domain/shotpath"
	"github.com/soocke/emushot/ui/model"
)

// Container assembles the frame source, path allocator, capture service and
// UI models. It holds no widgets so headless runs and tests can use it.
type Container struct {
	Config  *config.Config
	Logger  *slog.Logger
	Source  frame.Source
	Pattern *capture.PatternSource // nil unless the synthetic source is used
	Paths   *shotpath.Allocator
	Service screenshot.Service
	Shots   *model.ShotModel
	Session *model.SessionModel
}

// BuildContainer constructs all components. It has no side effects on disk;
// directories are created on the first capture.
func BuildContainer(cfg *config.Config, logger *slog.Logger) *Container {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := &Container{Config: cfg, Logger: logger}
	switch cfg.Source {
	case config.SourceScreen:
		c.Source = capture.NewScreenSource(logger)
	default:
		c.Pattern = capture.NewPatternSource(cfg.FrameWidth, cfg.FrameHeight)
		c.Source = c.Pattern
	}
	c.Paths = shotpath.NewAllocator(cfg, logger)
	c.Shots = model.NewShotModel()
	c.Session = model.NewSessionModel()
	c.Service = screenshot.NewService(screenshot.Options{
		Source:   c.Source,
		Paths:    c.Paths,
		Notifier: screenshot.Notifiers{screenshot.LogNotifier{Logger: logger}, c.Shots},
		Logger:   logger,
	})
	return c
}

// OpenContent starts a new content session: numbering restarts and the
// session clock resets.
func (c *Container) OpenContent(name string, now time.Time) {
	if c == nil {
		return
	}
	c.Service.OnContentOpened(name)
	c.Session.Open(name, now)
	if c.Logger != nil {
		c.Logger.Info("content opened", "content", name, "source", c.Config.Source)
	}
}

// Advance steps the synthetic source to its next frame. Live sources need no stepping.
func (c *Container) Advance() {
	if c != nil && c.Pattern != nil {
		c.Pattern.Advance()
	}
}
