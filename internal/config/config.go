// Package config loads server settings from defaults, an optional YAML file
// and PORTFOLIO_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const EnvPrefix = "PORTFOLIO_"

type Config struct {
	Port         string        `koanf:"port" yaml:"port"`
	Mode         string        `koanf:"mode" yaml:"mode"`
	DBPath       string        `koanf:"db_path" yaml:"db_path"`
	ContentFile  string        `koanf:"content_file" yaml:"content_file"`
	ContactDelay time.Duration `koanf:"contact_delay" yaml:"contact_delay"`
}

// DefaultConfig honors the plain PORT variable most hosts set.
func DefaultConfig() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return &Config{
		Port:         port,
		Mode:         "release",
		DBPath:       "data/portfolio.db",
		ContactDelay: 1500 * time.Millisecond,
	}
}

// Load reads configuration from the given YAML file if it exists, then
// overlays environment variable overrides (PORTFOLIO_DB_PATH -> db_path).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validModes = map[string]bool{"debug": true, "release": true, "test": true}

func (c *Config) Validate() error {
	n, err := strconv.Atoi(c.Port)
	if err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	if !validModes[c.Mode] {
		return fmt.Errorf("invalid mode %q: must be one of debug, release, test", c.Mode)
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.ContactDelay < 0 {
		return fmt.Errorf("contact_delay must be non-negative")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string { return ":" + c.Port }
