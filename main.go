package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/soocke/emushot/app"
	"github.com/soocke/emushot/app/window"
	"github.com/soocke/emushot/config"
	"github.com/soocke/emushot/debug"
	"github.com/soocke/emushot/logging"
)

func main() {
	var (
		cfgPath  = flag.String("config", "", "path to a JSON or YAML config file")
		saveCfg  = flag.Bool("save-config", false, "write the effective config back to -config and exit")
		content  = flag.String("content", "", "name of the loaded content")
		source   = flag.String("source", "", "frame source: pattern or screen")
		outDir   = flag.String("screenshot-dir", "", "directory for screenshots")
		headless = flag.Bool("headless", false, "run without a window")
		count    = flag.Int("count", -1, "captures to take in headless mode")
		every    = flag.Int("every", -1, "capture every N frames (0 disables auto capture)")
		debugOn  = flag.Bool("debug", false, "enable debug logging and periodic stats")
	)
	flag.Parse()

	cfg := config.DefaultConfig()
	var loadErr error
	if *cfgPath != "" {
		cfg, loadErr = config.Load(*cfgPath)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "content":
			cfg.ContentName = *content
		case "source":
			cfg.Source = *source
		case "screenshot-dir":
			cfg.ScreenshotPath = *outDir
		case "headless":
			cfg.Headless = *headless
		case "count":
			cfg.CaptureCount = *count
		case "every":
			cfg.AutoCaptureEvery = *every
		case "debug":
			cfg.Debug = *debugOn
		}
	})
	_ = cfg.Validate()

	logger := logging.New(logging.ParseLevel(cfg.LogLevel, cfg.Debug))
	if loadErr != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", loadErr)
	}
	if *saveCfg {
		if *cfgPath == "" {
			logger.Error("-save-config needs -config")
			os.Exit(2)
		}
		if err := cfg.Save(*cfgPath); err != nil {
			logger.Error("config save failed", "path", *cfgPath, "error", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := app.BuildContainer(cfg, logger)
	if cfg.Debug {
		debug.StartStatsLogger(ctx, 2*time.Second, logger, c.Service)
		debug.StartMemLogger(ctx, 5*time.Second, logger)
	}
	c.OpenContent(cfg.ContentName, time.Now())

	if !cfg.Headless {
		window.Run(ctx, config.AppName+" - "+cfg.ContentName, c)
		return
	}
	if err := app.RunHeadless(ctx, c); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("headless run stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
