package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"

	"storeInspect/internal/db"
)

// Config holds all tool configuration. Every field has a default, so an empty
// environment yields the fixed queries the tools were written for.
type Config struct {
	Database DatabaseConfig `envPrefix:"DB_"`
	Log      LogConfig      `envPrefix:"LOG_"`
	Reports  ReportsConfig  `envPrefix:"REPORT_"`
}

// DatabaseConfig contains store settings.
type DatabaseConfig struct {
	Path   string `env:"PATH" envDefault:"app.db"`    // SQLite store file path or file: URI
	Driver string `env:"DRIVER" envDefault:"sqlite3"` // sqlite3 (mattn, CGO) or sqlite (modernc)
}

// LogConfig contains diagnostic logging settings.
type LogConfig struct {
	Level string `env:"LEVEL" envDefault:"info"`
}

// ReportsConfig carries the literals baked into each report query.
type ReportsConfig struct {
	RecentLimit      int    `env:"RECENT_LIMIT" envDefault:"5"`
	SampleCategory   string `env:"SAMPLE_CATEGORY" envDefault:"records"`
	SampleLimit      int    `env:"SAMPLE_LIMIT" envDefault:"5"`
	UnmigratedTitle  string `env:"UNMIGRATED_TITLE" envDefault:"New record"`
	UnmigratedMarker string `env:"UNMIGRATED_MARKER" envDefault:"<a href="`
	Placeholder      string `env:"PLACEHOLDER" envDefault:"(not set)"`
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the tools cannot run with.
func (c *Config) Validate() error {
	if !validDriver(c.Database.Driver) {
		return fmt.Errorf("unsupported DB_DRIVER %q (want one of %v)", c.Database.Driver, db.Drivers())
	}
	if c.Reports.RecentLimit <= 0 {
		return fmt.Errorf("REPORT_RECENT_LIMIT must be positive, got %d", c.Reports.RecentLimit)
	}
	if c.Reports.SampleLimit <= 0 {
		return fmt.Errorf("REPORT_SAMPLE_LIMIT must be positive, got %d", c.Reports.SampleLimit)
	}
	// instr(content, '') is 1 for every row, which would hide everything.
	if c.Reports.UnmigratedMarker == "" {
		return fmt.Errorf("REPORT_UNMIGRATED_MARKER must not be empty")
	}
	return nil
}

func validDriver(name string) bool {
	for _, d := range db.Drivers() {
		if d == name {
			return true
		}
	}
	return false
}

// String returns a one-line summary of the config.
func (c *Config) String() string {
	return fmt.Sprintf("Config{DB: %s (%s), Log: %s, Category: %s}", c.Database.Path, c.Database.Driver, c.Log.Level, c.Reports.SampleCategory)
}
