// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/dragcal/internal/dateutil"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "DRAGCAL_"

// Config holds the application configuration.
type Config struct {
	View  ViewConfig  `toml:"view"`
	Drag  DragConfig  `toml:"drag"`
	UI    UIConfig    `toml:"ui"`
	Debug DebugConfig `toml:"debug"`
}

// ViewConfig holds the calendar grid layout.
type ViewConfig struct {
	HourStart        int    `toml:"hour_start"`         // first visible hour, 0-23
	HourEnd          int    `toml:"hour_end"`           // last visible hour (exclusive), 1-24
	WeekStart        string `toml:"week_start"`         // e.g., "monday"
	Days             int    `toml:"days"`               // visible columns, 1-7
	EventBlockHeight int    `toml:"event_block_height"` // rows per all-day event block
	Timezone         string `toml:"timezone"`           // IANA name, empty means local
}

// DragConfig holds pointer interaction settings.
type DragConfig struct {
	ClickThreshold  float64 `toml:"click_threshold"`   // cells the pointer may travel and still click
	DefaultDuration int     `toml:"default_duration"`  // minutes for events created by click
	FrameIntervalMS int     `toml:"frame_interval_ms"` // guide repaint interval
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
}

// DebugConfig holds debug log settings.
type DebugConfig struct {
	LogPath string `toml:"log_path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		View: ViewConfig{
			HourStart:        0,
			HourEnd:          24,
			WeekStart:        "monday",
			Days:             7,
			EventBlockHeight: 2,
		},
		Drag: DragConfig{
			ClickThreshold:  0,
			DefaultDuration: 60,
			FrameIntervalMS: 16,
		},
		UI: UIConfig{
			Theme: "frappe",
		},
		Debug: DebugConfig{
			LogPath: "dragcal-debug.log",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "dragcal", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Debug.LogPath = expandPath(cfg.Debug.LogPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	ints := []struct {
		name string
		dst  *int
	}{
		{"HOUR_START", &cfg.View.HourStart},
		{"HOUR_END", &cfg.View.HourEnd},
		{"DAYS", &cfg.View.Days},
		{"EVENT_BLOCK_HEIGHT", &cfg.View.EventBlockHeight},
		{"DEFAULT_DURATION", &cfg.Drag.DefaultDuration},
		{"FRAME_INTERVAL_MS", &cfg.Drag.FrameIntervalMS},
	}
	for _, e := range ints {
		v := os.Getenv(EnvPrefix + e.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, e.name, err)
		}
		*e.dst = n
	}

	if v := os.Getenv(EnvPrefix + "CLICK_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sCLICK_THRESHOLD: %w", EnvPrefix, err)
		}
		cfg.Drag.ClickThreshold = f
	}
	if v := os.Getenv(EnvPrefix + "WEEK_START"); v != "" {
		cfg.View.WeekStart = v
	}
	if v := os.Getenv(EnvPrefix + "TIMEZONE"); v != "" {
		cfg.View.Timezone = v
	}
	if v := os.Getenv(EnvPrefix + "UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv(EnvPrefix + "DEBUG_LOG"); v != "" {
		cfg.Debug.LogPath = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	v := c.View
	if v.HourStart < 0 || v.HourStart > 23 {
		return fmt.Errorf("hour_start must be between 0 and 23, got %d", v.HourStart)
	}
	if v.HourEnd < 1 || v.HourEnd > 24 {
		return fmt.Errorf("hour_end must be between 1 and 24, got %d", v.HourEnd)
	}
	if v.HourStart >= v.HourEnd {
		return errors.New("hour_start must be before hour_end")
	}
	if v.Days < 1 || v.Days > 7 {
		return fmt.Errorf("days must be between 1 and 7, got %d", v.Days)
	}
	if v.EventBlockHeight < 1 {
		return errors.New("event_block_height must be at least 1")
	}
	if _, err := dateutil.ParseWeekday(v.WeekStart); err != nil {
		return fmt.Errorf("week_start: %w", err)
	}
	if _, err := dateutil.LoadLocation(v.Timezone); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}

	d := c.Drag
	if d.ClickThreshold < 0 {
		return errors.New("click_threshold must not be negative")
	}
	if d.DefaultDuration < 1 {
		return errors.New("default_duration must be at least one minute")
	}
	if d.FrameIntervalMS < 1 {
		return errors.New("frame_interval_ms must be at least 1")
	}
	return nil
}

// WeekStartDay returns the configured first day of the week.
func (c *Config) WeekStartDay() time.Weekday {
	day, err := dateutil.ParseWeekday(c.View.WeekStart)
	if err != nil {
		return time.Monday
	}
	return day
}

// Location returns the configured time zone.
func (c *Config) Location() *time.Location {
	loc, err := dateutil.LoadLocation(c.View.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// FrameInterval returns the guide repaint interval.
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Drag.FrameIntervalMS) * time.Millisecond
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
