package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadSettings_DefaultsWithoutFile(t *testing.T) {
	t.Cleanup(viper.Reset)
	s, err := LoadSettings(t.TempDir())
	if err != nil {
		t.Fatalf("missing config file must not be an error: %v", err)
	}
	if s.WindowWidth != 1280 || s.WindowHeight != 800 {
		t.Fatalf("unexpected default window size: %dx%d", s.WindowWidth, s.WindowHeight)
	}
	if s.TargetDiameterCm != DefaultTargetDiameterCm {
		t.Fatalf("unexpected default target diameter: %.1f", s.TargetDiameterCm)
	}
	if !s.SwayEnabled {
		t.Fatal("sway should default to enabled")
	}
	if s.LogLevel != "info" {
		t.Fatalf("unexpected default log level: %q", s.LogLevel)
	}
}

func TestLoadSettings_FileOverridesDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	cfg := `{"window": {"width": 1920, "height": 1080}, "sway": {"enabled": false}}`
	if err := os.WriteFile(filepath.Join(dir, settingsFileName), []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	s, err := LoadSettings(dir)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if s.WindowWidth != 1920 || s.WindowHeight != 1080 {
		t.Fatalf("file values not applied: %dx%d", s.WindowWidth, s.WindowHeight)
	}
	if s.SwayEnabled {
		t.Fatal("file should disable sway")
	}
	if s.TargetDiameterCm != DefaultTargetDiameterCm {
		t.Fatalf("unset keys keep their defaults, got %.1f", s.TargetDiameterCm)
	}
}

func TestLoadSettings_MalformedFileIsAnError(t *testing.T) {
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, settingsFileName), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadSettings(dir); err == nil {
		t.Fatal("malformed config must surface an error")
	}
}
