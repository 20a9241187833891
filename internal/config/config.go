// Package config provides configuration management for the tool version reporter.
package config

// Config is the root configuration structure.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig contains configurations for logging.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}
