package infra

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger aliases zerolog.Logger so the rest of the module depends on the
// logging contract through this package.
type Logger = zerolog.Logger

// NewLogger builds the service logger. Development gets debug level and a
// human-readable console writer; everything else logs structured JSON at
// info.
func NewLogger(appEnv string) Logger {
	dev := appEnv == "development"

	level := zerolog.InfoLevel
	if dev {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	if dev {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	return logger
}
