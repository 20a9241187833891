// Package config provides configuration management for the tool version reporter.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override config values.
// Format: TOOLVERSIONS_<SECTION>_<KEY> (e.g., TOOLVERSIONS_LOGGING_LEVEL)
const EnvPrefix = "TOOLVERSIONS"

// Load reads configuration from the specified YAML file and environment variables.
// Environment variables take precedence over file values.
// An empty configPath skips the file and yields defaults plus environment overrides.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOptional behaves like Load, except that a missing file yields the defaults.
// It is used for the implicit default config path, which most hosts never create.
func LoadOptional(configPath string) (*Config, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return Load("")
		}
	}
	return Load(configPath)
}

// setDefaults sets default values for all configuration options.
func setDefaults(v *viper.Viper) {
	// stderr stays quiet unless something is actually wrong
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
}
