// Package config resolves the tool's settings from defaults, an optional
// YAML file, and LEAGUE_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Inputs
	GamesPath string `yaml:"games"`
	TeamsPath string `yaml:"teams"` // optional roster; empty = none

	// Output
	OutDir    string `yaml:"out_dir"`
	SiteTitle string `yaml:"title"`

	// Delimiter for non-JSON game files. Single character; empty = ','.
	Delimiter string `yaml:"delimiter"`

	// serve mode
	Addr         string        `yaml:"addr"`
	RebuildEvery time.Duration `yaml:"rebuild_every"`
}

func Default() Config {
	return Config{
		GamesPath:    "games.json",
		OutDir:       "dist",
		SiteTitle:    "League Standings",
		Addr:         ":8080",
		RebuildEvery: 15 * time.Minute,
	}
}

// Load builds the effective config. path may be empty (no config file);
// a named file that does not exist is an error, so a typoed --config
// never silently runs on defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.GamesPath = getEnv("LEAGUE_GAMES", cfg.GamesPath)
	cfg.TeamsPath = getEnv("LEAGUE_TEAMS", cfg.TeamsPath)
	cfg.OutDir = getEnv("LEAGUE_OUT_DIR", cfg.OutDir)
	cfg.SiteTitle = getEnv("LEAGUE_TITLE", cfg.SiteTitle)
	cfg.Delimiter = getEnv("LEAGUE_DELIMITER", cfg.Delimiter)
	cfg.Addr = getEnv("LEAGUE_ADDR", cfg.Addr)
	if v := os.Getenv("LEAGUE_REBUILD_EVERY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RebuildEvery = d
		}
	}
}

func (c Config) validate() error {
	if c.GamesPath == "" {
		return fmt.Errorf("games path must not be empty")
	}
	if c.OutDir == "" {
		return fmt.Errorf("out dir must not be empty")
	}
	if len([]rune(c.Delimiter)) > 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	if c.RebuildEvery < 0 {
		return fmt.Errorf("rebuild interval must not be negative")
	}
	return nil
}

// Comma returns the delimiter as a rune, 0 meaning "reader default".
func (c Config) Comma() rune {
	for _, r := range c.Delimiter {
		return r
	}
	return 0
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
