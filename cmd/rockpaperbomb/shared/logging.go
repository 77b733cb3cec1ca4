package shared

import (
	"os"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/rs/zerolog"
)

// SetupLogger configures zerolog with pretty console output at the named
// level ("debug", "info", "warn", "error"). Unknown or empty names mean info.
func SetupLogger(level string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(shellLevel(level)).
		With().
		Timestamp().
		Logger()
}

// SetupStructuredLogger configures zerolog for structured (JSON) output
func SetupStructuredLogger(level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	return zerolog.New(os.Stderr).
		Level(shellLevel(level)).
		With().
		Timestamp().
		Logger()
}

// GameLogger configures the key-value logger injected into the referee and
// simulator. Unknown or empty level names mean warn so game output stays
// readable.
func GameLogger(level string) *charmlog.Logger {
	return charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Level:           gameLevel(level),
		ReportTimestamp: true,
	})
}

func shellLevel(name string) zerolog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	}
	return zerolog.InfoLevel
}

func gameLevel(name string) charmlog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return charmlog.DebugLevel
	case "info":
		return charmlog.InfoLevel
	case "warn":
		return charmlog.WarnLevel
	case "error":
		return charmlog.ErrorLevel
	}
	return charmlog.WarnLevel
}
