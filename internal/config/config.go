package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	App struct {
		Greeting string `yaml:"greeting" env:"OMIKUJI_GREETING"`
		Timezone string `yaml:"timezone" env:"OMIKUJI_TIMEZONE"`
	} `yaml:"app"`
	History struct {
		StorageKey   string `yaml:"storage_key" env:"OMIKUJI_HISTORY_KEY"`
		Limit        int    `yaml:"limit" env:"OMIKUJI_HISTORY_LIMIT"`
		DisplayLimit int    `yaml:"display_limit" env:"OMIKUJI_HISTORY_DISPLAY_LIMIT"`
	} `yaml:"history"`
	Storage struct {
		Backend    string `yaml:"backend" env:"OMIKUJI_STORAGE"`
		FilePath   string `yaml:"file_path" env:"OMIKUJI_FILE_PATH"`
		SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH"`
		Redis      struct {
			Addr     string        `yaml:"addr" env:"REDIS_ADDR"`
			Password string        `yaml:"password" env:"REDIS_PASSWORD"`
			DB       int           `yaml:"db" env:"REDIS_DB"`
			Prefix   string        `yaml:"prefix" env:"REDIS_PREFIX"`
			Timeout  time.Duration `yaml:"timeout" env:"REDIS_TIMEOUT"`
		} `yaml:"redis"`
	} `yaml:"storage"`
	Clock struct {
		Cron string `yaml:"cron" env:"CRON_CLOCK"`
	} `yaml:"clock"`
	Server struct {
		Addr string `yaml:"addr" env:"HTTP_ADDR"`
	} `yaml:"server"`
	Console struct {
		Enabled bool `yaml:"enabled" env:"OMIKUJI_CONSOLE"`
	} `yaml:"console"`
	Log struct {
		Mode  string `yaml:"mode" env:"LOG_MODE"`
		Level string `yaml:"level" env:"LOG_LEVEL"`
	} `yaml:"log"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
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
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Defaults
	if cfg.App.Greeting == "" {
		cfg.App.Greeting = "Hello World"
	}
	if cfg.App.Timezone == "" {
		cfg.App.Timezone = "Asia/Tokyo"
	}
	if cfg.History.StorageKey == "" {
		cfg.History.StorageKey = "omikuji-history"
	}
	if cfg.History.Limit == 0 {
		cfg.History.Limit = 50
	}
	if cfg.History.DisplayLimit == 0 {
		cfg.History.DisplayLimit = 10
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "file"
	}
	if cfg.Storage.FilePath == "" {
		cfg.Storage.FilePath = "data/omikuji_history.json"
	}
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = "data/omikuji.db"
	}
	if cfg.Storage.Redis.Timeout == 0 {
		cfg.Storage.Redis.Timeout = 2 * time.Second
	}
	if cfg.Clock.Cron == "" {
		cfg.Clock.Cron = "* * * * * *"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Log.Mode == "" {
		cfg.Log.Mode = "development"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.History.Limit <= 0 {
		return fmt.Errorf("history.limit must be positive")
	}
	if c.History.DisplayLimit <= 0 {
		return fmt.Errorf("history.display_limit must be positive")
	}
	switch strings.ToLower(c.Storage.Backend) {
	case "none", "memory", "file", "sqlite":
	case "redis":
		if c.Storage.Redis.Addr == "" {
			return fmt.Errorf("storage.redis.addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown storage.backend %q", c.Storage.Backend)
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("app.timezone: %w", err)
	}
	return nil
}
