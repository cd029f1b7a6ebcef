package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Keepa struct {
		APIKey         string `yaml:"api_key"`
		Domain         string `yaml:"domain"`
		StatsDays      int    `yaml:"stats_days"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"keepa"`
	Rainforest struct {
		APIKey     string `yaml:"api_key"`
		Domain     string `yaml:"domain"`
		MaxResults int    `yaml:"max_results"`
	} `yaml:"rainforest"`
	Claude struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"claude"`
	Cache struct {
		Path      string `yaml:"path"`
		MaxSizeMB int    `yaml:"max_size_mb"`
		SweepCron string `yaml:"sweep_cron"`
	} `yaml:"cache"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("KEEPA_API_KEY"); v != "" {
		cfg.Keepa.APIKey = v
	}
	if v := os.Getenv("RAINFOREST_API_KEY"); v != "" {
		cfg.Rainforest.APIKey = v
	}
	if v := os.Getenv("CLAUDE_API_KEY"); v != "" {
		cfg.Claude.APIKey = v
	}
	if v := os.Getenv("CACHE_PATH"); v != "" {
		cfg.Cache.Path = v
	}

	// Defaults
	if cfg.Keepa.Domain == "" {
		cfg.Keepa.Domain = "JP"
	}
	if cfg.Keepa.StatsDays == 0 {
		cfg.Keepa.StatsDays = 90
	}
	if cfg.Keepa.TimeoutSeconds == 0 {
		cfg.Keepa.TimeoutSeconds = 60
	}
	if cfg.Rainforest.Domain == "" {
		cfg.Rainforest.Domain = "amazon.co.jp"
	}
	if cfg.Rainforest.MaxResults == 0 {
		cfg.Rainforest.MaxResults = 10
	}
	if cfg.Claude.Model == "" {
		cfg.Claude.Model = "claude-sonnet-4-5-20250929"
	}
	if cfg.Cache.Path == "" {
		cfg.Cache.Path = ".cache/api_cache.db"
	}
	if cfg.Cache.MaxSizeMB == 0 {
		cfg.Cache.MaxSizeMB = 100
	}
	if cfg.Cache.SweepCron == "" {
		cfg.Cache.SweepCron = "0 0 * * * *"
	}

	return cfg, nil
}

// Validate checks required fields before any network call is attempted.
// The Rainforest and Claude keys are optional: without the former the
// search falls back to the static identifier table, without the latter
// review analysis is unavailable.
func (c *Config) Validate() error {
	if c.Keepa.APIKey == "" {
		return fmt.Errorf("keepa.api_key is required")
	}
	if c.Cache.MaxSizeMB < 0 {
		return fmt.Errorf("cache.max_size_mb must not be negative")
	}
	return nil
}
