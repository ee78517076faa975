// Package config loads brandkit defaults from an optional config file
// and BRANDKIT_* environment variables. Command-line flags always win;
// this layer only supplies defaults for flags the user did not set.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the tool-wide defaults.
type Config struct {
	// Generate defaults.
	Method   string `mapstructure:"method"`
	Style    string `mapstructure:"style"`
	Provider string `mapstructure:"provider"`

	// Fetch behaviour.
	Timeout time.Duration `mapstructure:"timeout"`

	// Output defaults.
	OutputDir string `mapstructure:"output_dir"`
}

// Load reads ~/.config/brandkit/config.(yaml|toml|json) if present,
// applies BRANDKIT_* environment overrides, and returns the resulting
// defaults. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("method", "draw")
	v.SetDefault("style", "minimal")
	v.SetDefault("provider", "")
	v.SetDefault("timeout", "10s")
	v.SetDefault("output_dir", "./brand-kit")

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "brandkit"))
	}
	v.SetConfigName("config")

	v.SetEnvPrefix("BRANDKIT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
