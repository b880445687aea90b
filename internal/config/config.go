// Package config loads the optional YAML config file and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/nourish/internal/constants"
	"github.com/julianstephens/nourish/internal/logger"
)

type NotificationsConfig struct {
	WatchInterval time.Duration `yaml:"watch_interval"` // poll period for `notify --watch`
	DryRun        bool          `yaml:"dry_run"`        // print reminders instead of delivering them
}

type Config struct {
	Database      string              `yaml:"database"` // SQLite/JSON path, postgres URL or "keyring"
	Debug         bool                `yaml:"debug"`
	Notifications NotificationsConfig `yaml:"notifications"`
}

func Default() *Config {
	return &Config{
		Database: constants.DefaultConfigPath,
		Notifications: NotificationsConfig{
			WatchInterval: constants.DefaultWatchInterval,
		},
	}
}

// Load reads filename over the defaults. A missing file is not an error.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, err)
	}
	if cfg.Database == "" {
		cfg.Database = constants.DefaultConfigPath
	}
	if cfg.Notifications.WatchInterval <= 0 {
		cfg.Notifications.WatchInterval = constants.DefaultWatchInterval
	}
	return cfg, nil
}

// LoadDotEnv loads .env files into the process environment if present.
func LoadDotEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}
}

// ApplyEnv overlays NOURISH_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(constants.EnvDBConnection); v != "" {
		c.Database = v
	}
	c.Debug = envBool(constants.EnvDebug, c.Debug)
	c.Notifications.DryRun = envBool(constants.EnvNotifyDryRun, c.Notifications.DryRun)
	if v := os.Getenv(constants.EnvWatchInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			logger.Warn("invalid watch interval, keeping configured value", "value", v, "interval", c.Notifications.WatchInterval)
		} else {
			c.Notifications.WatchInterval = d
		}
	}
}

// DatabaseTarget resolves the storage target. An explicit --config flag
// wins over the environment and the file.
func (c *Config) DatabaseTarget(flag string) string {
	if flag != "" {
		return flag
	}
	return c.Database
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logger.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}
