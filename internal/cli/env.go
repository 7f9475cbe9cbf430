package cli

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupEnvironment loads a .env file if present and configures zerolog.
// The level comes from LOGLEVEL; verbose forces debug.
func SetupEnvironment(verbose bool) {
	err := godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(ParseLogLevel(os.Getenv("LOGLEVEL")))
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Logging is only usable from here on
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file")
	}
}

// ParseLogLevel maps a LOGLEVEL value to a zerolog level, defaulting to info
func ParseLogLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
