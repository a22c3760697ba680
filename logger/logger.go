// Package logger is the diagnostic channel of the library. Menus report
// invocation and construction failures here with full detail; the console
// only ever sees the generic failure message from the catalog.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the package-wide logger. Tests swap it for a buffer-backed
// instance to assert on emitted events.
var Logger zerolog.Logger

// LogLevel names a verbosity threshold accepted by Configure.
type LogLevel string

const (
	LevelDebug    LogLevel = "debug"
	LevelInfo     LogLevel = "info"
	LevelWarn     LogLevel = "warn"
	LevelError    LogLevel = "error"
	LevelDisabled LogLevel = "disabled"
)

func init() {
	Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// Configure sets up the global logger with the specified level and output.
// With pretty=true a human-readable console writer is used instead of the
// default JSON lines, which suits interactive demo sessions.
func Configure(level LogLevel, pretty bool) {
	var zeroLevel zerolog.Level
	switch level {
	case LevelDebug:
		zeroLevel = zerolog.DebugLevel
	case LevelInfo:
		zeroLevel = zerolog.InfoLevel
	case LevelWarn:
		zeroLevel = zerolog.WarnLevel
	case LevelError:
		zeroLevel = zerolog.ErrorLevel
	case LevelDisabled:
		zeroLevel = zerolog.Disabled
	default:
		zeroLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(zeroLevel)

	var writer io.Writer = os.Stderr
	if pretty {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
			NoColor:    false,
		}
	}

	Logger = zerolog.New(writer).With().Timestamp().Logger()

	// Update the global logger
	log.Logger = Logger
}

// LevelFromEnv reads EASYCONSOLE_LOG and falls back to info. The menus
// share stdout with their own rendering, so the diagnostic level is the
// only logging knob the library exposes.
func LevelFromEnv() LogLevel {
	switch strings.ToLower(os.Getenv("EASYCONSOLE_LOG")) {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	case "disabled", "off":
		return LevelDisabled
	}
	return LevelInfo
}
