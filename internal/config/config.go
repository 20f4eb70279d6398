// Package config loads application settings from config.yaml and the
// WORTSCHATZ_* environment, falling back to defaults under the user's
// home directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Backend selects where progress is persisted.
type Backend string

const (
	BackendFile Backend = "file"
	BackendBolt Backend = "bolt"
)

// Config holds all application configuration.
type Config struct {
	DataDir         string        `mapstructure:"data_dir"`         // category JSON files
	ProgressPath    string        `mapstructure:"progress_path"`    // progress blob location
	ProgressBackend Backend       `mapstructure:"progress_backend"` // "file" or "bolt"
	HistoryDB       string        `mapstructure:"history_db"`       // sqlite round history
	SpeedSeconds    int           `mapstructure:"speed_seconds"`    // speed round time budget
	Serve           ServeConfig   `mapstructure:"serve"`
	Logging         LoggingConfig `mapstructure:"logging"`
}

// ServeConfig configures the built-in static file server.
type ServeConfig struct {
	Addr string `mapstructure:"addr"`
	Dir  string `mapstructure:"dir"` // web assets to serve; empty serves data_dir
}

// LoggingConfig configures the diagnostic log.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Default returns the default configuration rooted at ~/.wortschatz.
func Default() *Config {
	root := defaultRoot()
	return &Config{
		DataDir:         filepath.Join(root, "data"),
		ProgressPath:    filepath.Join(root, "progress.json"),
		ProgressBackend: BackendFile,
		HistoryDB:       filepath.Join(root, "history.db"),
		SpeedSeconds:    60,
		Serve: ServeConfig{
			Addr: "localhost:8000",
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

func defaultRoot() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".wortschatz")
}

// Load reads configuration from file (the explicit path if given,
// otherwise config.yaml under ~/.wortschatz or the working directory)
// and applies WORTSCHATZ_* environment overrides. A missing config
// file is fine; defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultRoot())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("WORTSCHATZ")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// an explicit path must exist; the default search may not
			if path != "" || !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.ProgressBackend {
	case BackendFile, BackendBolt:
	default:
		return fmt.Errorf("unknown progress backend %q", c.ProgressBackend)
	}
	if c.SpeedSeconds <= 0 {
		return fmt.Errorf("speed_seconds must be positive, got %d", c.SpeedSeconds)
	}
	return nil
}
