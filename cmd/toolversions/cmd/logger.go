// Package cmd provides CLI commands for the tool version reporter.
package cmd

import (
	"io"

	"github.com/rs/zerolog"
)

// setupLogger creates a zerolog logger with the specified level and format.
// Logs never go to stdout, which carries only the report.
func setupLogger(out io.Writer, level string, format string) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.WarnLevel
	}

	var output io.Writer
	if format == "json" {
		output = out
	} else {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(output).Level(logLevel).With().Timestamp().Logger()
}
