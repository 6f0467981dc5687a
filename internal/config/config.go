package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = ".repomap.yaml"

// ErrInvalidLimit is returned when a limit is negative.
var ErrInvalidLimit = errors.New("invalid limit")

// Config represents the .repomap.yaml configuration.
type Config struct {
	Limits       Limits        `yaml:"limits"`
	Include      []string      `yaml:"include"`
	Exclude      []string      `yaml:"exclude"`
	ExcludedDirs []string      `yaml:"excluded_dirs"`
	GitTimeout   time.Duration `yaml:"git_timeout"`
	Log          LogConfig     `yaml:"log"`
}

// Limits are the hard caps of a run. Zero is a legal cap.
type Limits struct {
	MaxTreeChars      int   `yaml:"max_tree_chars"`
	MaxSymbols        int   `yaml:"max_symbols"`
	MaxTopFiles       int   `yaml:"max_top_files"`
	MaxHotspots       int   `yaml:"max_hotspots"`
	MaxTreeDepth      int   `yaml:"max_tree_depth"`
	MaxFileKB         int64 `yaml:"max_file_kb"`
	MaxFileBytes      int64 `yaml:"max_file_bytes"`
	MaxScanLines      int   `yaml:"max_scan_lines"`
	MaxFiles          int   `yaml:"max_files"`
	MaxTotalBytes     int64 `yaml:"max_total_bytes"`
	MaxSymbolsPerFile int   `yaml:"max_symbols_per_file"`
}

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultLimits returns the caps used when nothing else is configured.
func DefaultLimits() Limits {
	return Limits{
		MaxTreeChars:      4000,
		MaxSymbols:        200,
		MaxTopFiles:       50,
		MaxHotspots:       20,
		MaxTreeDepth:      4,
		MaxFileKB:         512,
		MaxFileBytes:      512 * 1024,
		MaxScanLines:      4000,
		MaxFiles:          5000,
		MaxTotalBytes:     20 * 1024 * 1024,
		MaxSymbolsPerFile: 25,
	}
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Limits:     DefaultLimits(),
		GitTimeout: 2 * time.Second,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads a configuration file from the given path.
// Missing fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.GitTimeout <= 0 {
		cfg.GitTimeout = 2 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}

	if err := cfg.Limits.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects negative caps.
func (l Limits) Validate() error {
	checks := []struct {
		name  string
		value int64
	}{
		{"max_tree_chars", int64(l.MaxTreeChars)},
		{"max_symbols", int64(l.MaxSymbols)},
		{"max_top_files", int64(l.MaxTopFiles)},
		{"max_hotspots", int64(l.MaxHotspots)},
		{"max_tree_depth", int64(l.MaxTreeDepth)},
		{"max_file_kb", l.MaxFileKB},
		{"max_file_bytes", l.MaxFileBytes},
		{"max_scan_lines", int64(l.MaxScanLines)},
		{"max_files", int64(l.MaxFiles)},
		{"max_total_bytes", l.MaxTotalBytes},
		{"max_symbols_per_file", int64(l.MaxSymbolsPerFile)},
	}
	for _, c := range checks {
		if c.value < 0 {
			return fmt.Errorf("%w: %s must not be negative (got %d)", ErrInvalidLimit, c.name, c.value)
		}
	}
	return nil
}
