package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	def := DefaultConfig()
	if *cfg != *def {
		t.Errorf("got %+v, want defaults %+v", cfg, def)
	}
}

func TestReadConfigMissingFileFails(t *testing.T) {
	if _, err := ReadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, `sound:
  enabled: false
  volume: -1.5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Sound.Enabled {
		t.Error("Sound.Enabled: got true, want false")
	}
	if cfg.Sound.Volume != -1.5 {
		t.Errorf("Sound.Volume: got %v, want -1.5", cfg.Sound.Volume)
	}
	if !cfg.Notifications.Enabled || !cfg.Notifications.Hourly {
		t.Errorf("Notifications: got %+v, want defaults", cfg.Notifications)
	}
	if cfg.Window.Width != 500 || cfg.Window.Height != 650 {
		t.Errorf("Window: got %+v, want 500x650", cfg.Window)
	}
}

func TestMalformedFileFails(t *testing.T) {
	path := writeFile(t, "window: [not, a, map\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestNonPositiveWindowFails(t *testing.T) {
	path := writeFile(t, "window:\n  width: 0\n  height: 400\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for zero width")
	}
}
