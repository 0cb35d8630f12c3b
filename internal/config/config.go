// Package config loads editor settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the user-tunable settings. Zero values are replaced by
// defaults at load time.
type Config struct {
	// TabWidth is the number of columns a tab advances when drawn.
	TabWidth int `toml:"tab_width"`
	// ScrollStep is how many lines one wheel notch scrolls.
	ScrollStep int `toml:"scroll_step"`
	// CursorBlinkMS is the blink half-period in milliseconds. Zero
	// after defaulting means no blink.
	CursorBlinkMS int `toml:"cursor_blink_ms"`
	// MaxFileSize overrides the open size ceiling in bytes.
	MaxFileSize int64 `toml:"max_file_size"`
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		TabWidth:      4,
		ScrollStep:    3,
		CursorBlinkMS: 500,
		MaxFileSize:   3 << 30,
		LogLevel:      "info",
	}
}

// Path returns the config file location: $VELLUM_CONFIG if set, else
// vellum/config.toml under the user config directory.
func Path() string {
	if p := os.Getenv("VELLUM_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vellum", "config.toml")
}

// Load reads the config from Path. A missing file yields the defaults.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config at path, filling unset fields with
// defaults. path == "" or a missing file yields the defaults.
func LoadFrom(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.merge(file)
	if err := cfg.validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) merge(o Config) {
	if o.TabWidth != 0 {
		c.TabWidth = o.TabWidth
	}
	if o.ScrollStep != 0 {
		c.ScrollStep = o.ScrollStep
	}
	if o.CursorBlinkMS != 0 {
		c.CursorBlinkMS = o.CursorBlinkMS
	}
	if o.MaxFileSize != 0 {
		c.MaxFileSize = o.MaxFileSize
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}

func (c Config) validate() error {
	if c.TabWidth < 1 || c.TabWidth > 16 {
		return fmt.Errorf("tab_width %d out of range [1,16]", c.TabWidth)
	}
	if c.ScrollStep < 1 {
		return fmt.Errorf("scroll_step %d must be positive", c.ScrollStep)
	}
	if c.MaxFileSize < 1 {
		return fmt.Errorf("max_file_size %d must be positive", c.MaxFileSize)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
