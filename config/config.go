// Package config carries the qcwire CLI settings: defaults first, then an
// optional TOML file, then environment overrides. Only keys actually present
// in the file replace defaults; environment variables win over both.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config is the resolved runtime configuration.
type Config struct {
	// ArchivePath is the SQLite file the archive subcommands operate on.
	ArchivePath string `env:"QCWIRE_ARCHIVE_PATH"`
	// Verbose switches logging to debug level.
	Verbose bool `env:"QCWIRE_VERBOSE"`
	// WatchDebounce is the quiet period after a file event before the
	// watcher revalidates.
	WatchDebounce time.Duration `env:"QCWIRE_WATCH_DEBOUNCE"`
}

// fileConfig maps config.toml keys. Durations travel as strings so the file
// can say "250ms" rather than a bare nanosecond count.
type fileConfig struct {
	ArchivePath   string `toml:"archive_path"`
	Verbose       bool   `toml:"verbose"`
	WatchDebounce string `toml:"watch_debounce"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ArchivePath:   "qcwire.db",
		WatchDebounce: 250 * time.Millisecond,
	}
}

// Load resolves the configuration: Default, overlaid with the TOML file at
// path when path is non-empty, overlaid with environment variables, then
// validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		var raw fileConfig
		meta, err := toml.DecodeFile(path, &raw)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		if meta.IsDefined("archive_path") {
			cfg.ArchivePath = strings.TrimSpace(raw.ArchivePath)
		}
		if meta.IsDefined("verbose") {
			cfg.Verbose = raw.Verbose
		}
		if meta.IsDefined("watch_debounce") {
			d, err := time.ParseDuration(strings.TrimSpace(raw.WatchDebounce))
			if err != nil {
				return Config{}, fmt.Errorf("load config: watch_debounce: %w", err)
			}
			cfg.WatchDebounce = d
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the resolved configuration.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ArchivePath) == "" {
		return fmt.Errorf("config: archive_path is required")
	}
	if c.WatchDebounce <= 0 {
		return fmt.Errorf("config: watch_debounce must be positive, got %s", c.WatchDebounce)
	}
	return nil
}
