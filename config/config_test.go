package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Source != SourcePattern || cfg.UserDataPath == "" || cfg.ScreenshotPath != "" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestSaveLoad_JSONAndYAML(t *testing.T) {
	for _, name := range []string{"cfg.json", "cfg.yaml"} {
		path := filepath.Join(t.TempDir(), name)
		cfg := DefaultConfig()
		cfg.ScreenshotPath = "/tmp/shots"
		cfg.ContentName = "Super Game!"
		cfg.AutoCaptureEvery = 30
		if err := cfg.Save(path); err != nil {
			t.Fatalf("%s save: %v", name, err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatalf("%s load: %v", name, err)
		}
		if got.ScreenshotPath != "/tmp/shots" || got.ContentName != "Super Game!" || got.AutoCaptureEvery != 30 {
			t.Fatalf("%s round trip mismatch: %+v", name, got)
		}
	}
}

func TestLoad_YAMLPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yml")
	body := "screenshot_path: /data/shots\nsource: bogus\nframe_width: -3\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ScreenshotPath != "/data/shots" {
		t.Fatalf("screenshot path not loaded")
	}
	if cfg.Source != SourcePattern || cfg.FrameWidth != 320 || cfg.FrameIntervalMs != 16 {
		t.Fatalf("validate should clamp invalid values: %+v", cfg)
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	_ = os.WriteFile(path, []byte("{not json"), 0o600)
	cfg, err := Load(path)
	if err == nil || cfg == nil {
		t.Fatalf("expected defaults plus error, got cfg=%v err=%v", cfg, err)
	}
}

func TestString_Keys(t *testing.T) {
	cfg := &Config{ScreenshotPath: "/a", UserDataPath: "/b", ContentName: "c"}
	if cfg.String("ScreenshotPath") != "/a" || cfg.String("UserDataPath") != "/b" || cfg.String("ContentName") != "c" {
		t.Fatalf("key lookup mismatch")
	}
	if cfg.String("Nope") != "" || (*Config)(nil).String("ScreenshotPath") != "" {
		t.Fatalf("unknown keys and nil config resolve to empty")
	}
}
