// Package config provides TOML-based configuration for metric-tracker.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gitlab.com/tinyland/lab/metric-tracker/pkg/fill"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/render"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/store"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/terminal"
	"gitlab.com/tinyland/lab/metric-tracker/pkg/theme"
)

// Config is the top-level configuration.
type Config struct {
	Data  DataConfig  `toml:"data"`
	Chart ChartConfig `toml:"chart"`
	Log   LogConfig   `toml:"log"`
}

// DataConfig locates the measurement store.
type DataConfig struct {
	Path   string `toml:"path"`
	Format string `toml:"format"` // auto, json or yaml
}

// ChartConfig controls gap filling and rendering.
type ChartConfig struct {
	Strategy  string `toml:"strategy"`
	Theme     string `toml:"theme"`
	ThemeFile string `toml:"theme_file,omitempty"`
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	PNGPath   string `toml:"png_path,omitempty"`
	Display   string `toml:"display"`
	Protocol  string `toml:"protocol"`
}

// LogConfig controls diagnostics.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Data.Path == "" {
		errs = append(errs, errors.New("data.path must not be empty"))
	}
	if _, err := store.ParseFormat(c.Data.Format); err != nil {
		errs = append(errs, err)
	}
	if _, err := fill.ParseStrategy(c.Chart.Strategy); err != nil {
		errs = append(errs, err)
	}
	if _, err := render.ParseMode(c.Chart.Display); err != nil {
		errs = append(errs, err)
	}
	if _, err := terminal.ParseProtocol(c.Chart.Protocol); err != nil {
		errs = append(errs, err)
	}
	if c.Chart.ThemeFile == "" && c.Chart.Theme != "" {
		if _, ok := theme.Lookup(c.Chart.Theme); !ok {
			errs = append(errs, fmt.Errorf("unknown theme %q (available: %s)",
				c.Chart.Theme, strings.Join(theme.Names(), ", ")))
		}
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		errs = append(errs, fmt.Errorf("chart size %dx%d must be positive",
			c.Chart.Width, c.Chart.Height))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// SlogLevel returns the configured slog level, falling back to warn.
func (l LogConfig) SlogLevel() slog.Level {
	lvl, err := parseLevel(l.Level)
	if err != nil {
		return slog.LevelWarn
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelWarn, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}
