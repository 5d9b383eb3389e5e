package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// AppName names the per-user data directory.
const AppName = "emushot"

// Frame sources understood by the application container.
const (
	SourcePattern = "pattern"
	SourceScreen  = "screen"
)

// Config holds runtime configuration for capture and app behavior.
// Fields may be loaded from a JSON or YAML file and overridden by command-line flags.
type Config struct {
	Debug    bool   `json:"debug" yaml:"debug"`
	LogLevel string `json:"log_level" yaml:"log_level"`

	// Output locations. An empty ScreenshotPath means <UserDataPath>/screenshot.
	ScreenshotPath string `json:"screenshot_path" yaml:"screenshot_path"`
	UserDataPath   string `json:"user_data_path" yaml:"user_data_path"`

	// Emulated content and frame source
	ContentName     string `json:"content_name" yaml:"content_name"`
	Source          string `json:"source" yaml:"source"`
	FrameWidth      int    `json:"frame_width" yaml:"frame_width"`
	FrameHeight     int    `json:"frame_height" yaml:"frame_height"`
	FrameIntervalMs int    `json:"frame_interval_ms" yaml:"frame_interval_ms"`

	// Automatic capture: every N frames (0 disables) until CaptureCount files
	// were requested in headless mode.
	AutoCaptureEvery int  `json:"auto_capture_every" yaml:"auto_capture_every"`
	CaptureCount     int  `json:"capture_count" yaml:"capture_count"`
	Headless         bool `json:"headless" yaml:"headless"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:            false,
		LogLevel:         "info",
		ScreenshotPath:   "",
		UserDataPath:     filepath.Join(xdg.DataHome, AppName),
		ContentName:      "Test Pattern",
		Source:           SourcePattern,
		FrameWidth:       320,
		FrameHeight:      240,
		FrameIntervalMs:  16,
		AutoCaptureEvery: 0,
		CaptureCount:     1,
		Headless:         false,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = "info"
	}
	if c.UserDataPath == "" {
		c.UserDataPath = filepath.Join(xdg.DataHome, AppName)
	}
	if c.Source != SourcePattern && c.Source != SourceScreen {
		c.Source = SourcePattern
	}
	if c.FrameWidth <= 0 {
		c.FrameWidth = 320
	}
	if c.FrameHeight <= 0 {
		c.FrameHeight = 240
	}
	if c.FrameIntervalMs <= 0 {
		c.FrameIntervalMs = 16
	}
	if c.AutoCaptureEvery < 0 {
		c.AutoCaptureEvery = 0
	}
	if c.CaptureCount < 0 {
		c.CaptureCount = 0
	}
	return nil
}

// String resolves a setting by its config store key. Unknown keys resolve to "".
func (c *Config) String(key string) string {
	if c == nil {
		return ""
	}
	switch key {
	case "ScreenshotPath":
		return c.ScreenshotPath
	case "UserDataPath":
		return c.UserDataPath
	case "ContentName":
		return c.ContentName
	}
	return ""
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load attempts to read configuration from the given JSON or YAML file path. If the
// file does not exist it returns DefaultConfig(). On decode error it returns defaults
// with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	if isYAML(path) {
		err = yaml.NewDecoder(f).Decode(cfg)
	} else {
		err = json.NewDecoder(f).Decode(cfg)
	}
	if err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path, as YAML for .yaml/.yml
// paths and indented JSON otherwise.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if isYAML(path) {
		enc := yaml.NewEncoder(f)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
