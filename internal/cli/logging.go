package cli

import (
	"os"

	"github.com/rs/zerolog"
)

// logger is the package-level logger for CLI operations. Stdout is reserved
// for rendered output, so all log lines go to stderr.
var logger zerolog.Logger

func setupLogging(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
