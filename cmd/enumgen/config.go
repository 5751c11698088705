package main

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration of enumgen.
// Values are populated from .enumgen.yaml, ENUMGEN_* env vars (a .env file is
// honored) and CLI flags.
type Config struct {
	Package  string        `mapstructure:"package"`
	Output   string        `mapstructure:"output"`
	Verbose  bool          `mapstructure:"verbose"`
	Watch    bool          `mapstructure:"watch"`
	Debounce time.Duration `mapstructure:"debounce"`
}

// LoadConfig reads configuration from viper, applying built-in defaults for
// any values not set by config file, environment, or flags.
func LoadConfig() Config {
	viper.SetDefault("package", "")
	viper.SetDefault("output", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("watch", false)
	viper.SetDefault("debounce", 100*time.Millisecond)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
