package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newValidConfig creates a valid configuration for testing.
func newValidConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, Validate(newValidConfig()))
}

func TestValidate_NilConfig(t *testing.T) {
	assert.Error(t, Validate(nil))
}

func TestValidate_Logging(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		wantField string
	}{
		{name: "invalid level", level: "trace", format: "json", wantField: "logging.level"},
		{name: "empty level", level: "", format: "json", wantField: "logging.level"},
		{name: "invalid format", level: "info", format: "xml", wantField: "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newValidConfig()
			cfg.Logging.Level = tt.level
			cfg.Logging.Format = tt.format

			err := Validate(cfg)
			require.Error(t, err)

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %T", err)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.wantField, verrs[0].Field)
			assert.Equal(t, "oneof", verrs[0].Tag)
			assert.Contains(t, verrs[0].Message, "value must be one of")
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "logging.level", Message: "value must be one of: debug info warn error"},
		{Field: "logging.format", Message: "value must be one of: json console"},
	}

	msg := errs.Error()
	assert.True(t, strings.HasPrefix(msg, "config validation failed:"))
	assert.Contains(t, msg, "logging.level: value must be one of")
	assert.Contains(t, msg, "logging.format: value must be one of")

	assert.Empty(t, ValidationErrors{}.Error())
}

func TestFormatFieldName(t *testing.T) {
	assert.Equal(t, "logging.level", formatFieldName("Config.Logging.Level"))
	assert.Equal(t, "logging", formatFieldName("Logging"))
}
