package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.View.HourStart != 0 || cfg.View.HourEnd != 24 {
		t.Errorf("expected hours 0-24, got %d-%d", cfg.View.HourStart, cfg.View.HourEnd)
	}
	if cfg.View.Days != 7 {
		t.Errorf("expected 7 days, got %d", cfg.View.Days)
	}
	if cfg.View.WeekStart != "monday" {
		t.Errorf("expected week_start monday, got %s", cfg.View.WeekStart)
	}
	if cfg.Drag.DefaultDuration != 60 {
		t.Errorf("expected default_duration 60, got %d", cfg.Drag.DefaultDuration)
	}
	if cfg.FrameInterval() != 16*time.Millisecond {
		t.Errorf("expected frame interval 16ms, got %v", cfg.FrameInterval())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.View.HourEnd != 24 {
		t.Errorf("expected default hour_end, got %d", cfg.View.HourEnd)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[view]
hour_start = 7
hour_end = 20
week_start = "sunday"
days = 5
timezone = "Europe/Madrid"

[drag]
click_threshold = 1.5
default_duration = 45

[ui]
theme = "latte"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.View.HourStart != 7 || cfg.View.HourEnd != 20 {
		t.Errorf("expected hours 7-20, got %d-%d", cfg.View.HourStart, cfg.View.HourEnd)
	}
	if cfg.WeekStartDay() != time.Sunday {
		t.Errorf("expected week start Sunday, got %v", cfg.WeekStartDay())
	}
	if cfg.View.Days != 5 {
		t.Errorf("expected 5 days, got %d", cfg.View.Days)
	}
	if cfg.Location().String() != "Europe/Madrid" {
		t.Errorf("expected Europe/Madrid, got %s", cfg.Location())
	}
	if cfg.Drag.ClickThreshold != 1.5 {
		t.Errorf("expected click_threshold 1.5, got %v", cfg.Drag.ClickThreshold)
	}
	if cfg.Drag.DefaultDuration != 45 {
		t.Errorf("expected default_duration 45, got %d", cfg.Drag.DefaultDuration)
	}
	// Unset keys keep their defaults.
	if cfg.Drag.FrameIntervalMS != 16 {
		t.Errorf("expected frame_interval_ms 16, got %d", cfg.Drag.FrameIntervalMS)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[view\nhour_start = "), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[view]
hour_start = 8
hour_end = 18
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("DRAGCAL_HOUR_START", "6")
	t.Setenv("DRAGCAL_CLICK_THRESHOLD", "2")
	t.Setenv("DRAGCAL_UI_THEME", "mocha")
	t.Setenv("DRAGCAL_DEBUG_LOG", "~/drag.log")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.View.HourStart != 6 {
		t.Errorf("expected hour_start 6 from env, got %d", cfg.View.HourStart)
	}
	if cfg.View.HourEnd != 18 {
		t.Errorf("expected hour_end 18 from file, got %d", cfg.View.HourEnd)
	}
	if cfg.Drag.ClickThreshold != 2 {
		t.Errorf("expected click_threshold 2 from env, got %v", cfg.Drag.ClickThreshold)
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha from env, got %s", cfg.UI.Theme)
	}
	home, _ := os.UserHomeDir()
	if cfg.Debug.LogPath != filepath.Join(home, "drag.log") {
		t.Errorf("expected expanded log path, got %s", cfg.Debug.LogPath)
	}
}

func TestLoadFrom_InvalidEnvNumber(t *testing.T) {
	t.Setenv("DRAGCAL_DAYS", "seven")

	if _, err := LoadFrom("/nonexistent/path/config.toml"); err == nil {
		t.Error("expected error for non-numeric DRAGCAL_DAYS")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"hour_start negative", func(c *Config) { c.View.HourStart = -1 }},
		{"hour_end too large", func(c *Config) { c.View.HourEnd = 25 }},
		{"hour_start after hour_end", func(c *Config) { c.View.HourStart = 18; c.View.HourEnd = 9 }},
		{"hour_start equals hour_end", func(c *Config) { c.View.HourStart = 9; c.View.HourEnd = 9 }},
		{"zero days", func(c *Config) { c.View.Days = 0 }},
		{"eight days", func(c *Config) { c.View.Days = 8 }},
		{"block height", func(c *Config) { c.View.EventBlockHeight = 0 }},
		{"week start", func(c *Config) { c.View.WeekStart = "funday" }},
		{"timezone", func(c *Config) { c.View.Timezone = "Mars/Olympus" }},
		{"negative threshold", func(c *Config) { c.Drag.ClickThreshold = -1 }},
		{"zero duration", func(c *Config) { c.Drag.DefaultDuration = 0 }},
		{"zero frame interval", func(c *Config) { c.Drag.FrameIntervalMS = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/debug.log", filepath.Join(home, "debug.log")},
		{"/absolute/debug.log", "/absolute/debug.log"},
		{"relative/debug.log", "relative/debug.log"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.toml")

	cfg := Default()
	cfg.View.HourStart = 6
	cfg.View.HourEnd = 22
	cfg.View.WeekStart = "sunday"
	cfg.Drag.ClickThreshold = 0.5

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.View.HourStart != 6 || loaded.View.HourEnd != 22 {
		t.Errorf("expected hours 6-22, got %d-%d", loaded.View.HourStart, loaded.View.HourEnd)
	}
	if loaded.View.WeekStart != "sunday" {
		t.Errorf("expected week_start sunday, got %s", loaded.View.WeekStart)
	}
	if loaded.Drag.ClickThreshold != 0.5 {
		t.Errorf("expected click_threshold 0.5, got %v", loaded.Drag.ClickThreshold)
	}
}
