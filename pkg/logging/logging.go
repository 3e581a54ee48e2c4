// Package logging centralises the zerolog wiring for the module. The library
// stays silent by default (a nop logger); hosts opt into diagnostics by
// installing a logger before rendering starts.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.Nop()

// SetLogger installs the logger all components derive from. Call it during
// setup, before any rendering; it is not synchronised against in-flight
// renders.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// GetLogger returns a contextualized logger for the given component.
func GetLogger(component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// SetupLogger configures a console logger at a level derived from verbosity
// and installs it. Intended for CLI entry points.
func SetupLogger(verbosity int) {
	level := zerolog.WarnLevel
	switch verbosity {
	case 0:
	case 1:
		level = zerolog.InfoLevel
	case 2:
		level = zerolog.DebugLevel
	default:
		level = zerolog.TraceLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}
	SetLogger(zerolog.New(console).Level(level).With().Timestamp().Logger())
}
