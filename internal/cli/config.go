package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the optional on-disk configuration, read from
// ~/.config/genedist/config.toml (or $XDG_CONFIG_HOME/genedist/config.toml).
// Command-line flags override config values.
//
// Example:
//
//	no_cache = false
//	redis_url = "redis://localhost:6379/0"
//
//	[server]
//	addr = ":8080"
//
//	[mongo]
//	uri = "mongodb://localhost:27017"
//	database = "genedist"
type Config struct {
	// NoCache disables the result cache for all commands.
	NoCache bool `toml:"no_cache"`

	// RedisURL, if set, backs the cache with Redis instead of local files.
	RedisURL string `toml:"redis_url"`

	Server struct {
		// Addr is the listen address for the serve command.
		Addr string `toml:"addr"`
	} `toml:"server"`

	Mongo struct {
		// URI, if set, persists matrix runs to MongoDB.
		URI string `toml:"uri"`
		// Database is the MongoDB database name.
		Database string `toml:"database"`
	} `toml:"mongo"`
}

func defaultConfig() Config {
	var cfg Config
	cfg.Server.Addr = ":8080"
	cfg.Mongo.Database = appName
	return cfg
}

// configPath returns the config file location using the XDG standard.
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// LoadConfig reads and decodes the config file at path.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigOrDefault loads the standard config file, falling back to
// defaults when the file is missing or unreadable.
func LoadConfigOrDefault() Config {
	path, err := configPath()
	if err != nil {
		return defaultConfig()
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return defaultConfig()
	}
	return cfg
}
