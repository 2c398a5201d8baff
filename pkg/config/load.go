package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"gitlab.com/tinyland/lab/metric-tracker/pkg/render"
)

const appName = "metric-tracker"

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/metric-tracker/config.toml
//  2. ~/.config/metric-tracker/config.toml
//
// If no file exists, returns DefaultConfig() with env overrides applied.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg, os.Getenv)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg, os.Getenv)
			return cfg, nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader reads configuration from an io.Reader. Keys missing from
// the input keep their defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	applyEnvOverrides(cfg, os.Getenv)
	return cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Path:   "metrics_data.json",
			Format: "auto",
		},
		Chart: ChartConfig{
			Strategy: "forward-fill",
			Theme:    "tab10",
			Title:    render.DefaultTitle,
			Width:    render.DefaultWidth,
			Height:   render.DefaultHeight,
			Display:  "auto",
			Protocol: "auto",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config, getenv func(string) string) {
	if v := getenv("METRIC_TRACKER_DATA"); v != "" {
		cfg.Data.Path = v
	}
	if v := getenv("METRIC_TRACKER_STRATEGY"); v != "" {
		cfg.Chart.Strategy = v
	}
	if v := getenv("METRIC_TRACKER_THEME"); v != "" {
		cfg.Chart.Theme = v
	}
	if v := getenv("METRIC_TRACKER_DISPLAY"); v != "" {
		cfg.Chart.Display = v
	}
	if v := getenv("METRIC_TRACKER_PROTOCOL"); v != "" {
		cfg.Chart.Protocol = v
	}
	if v := getenv("METRIC_TRACKER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, appName, "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, appName, "config.toml"))
	}
	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
