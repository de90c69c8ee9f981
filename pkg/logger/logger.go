package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New creates the application logger writing to stdout.
func New() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	return zerolog.New(os.Stdout).
		With().
		Timestamp().
		Logger()
}

// NewWithLevel creates the application logger with an explicit level.
// Unknown level strings fall back to info.
func NewWithLevel(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}

	return New().Level(parsed)
}
