package log

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).With().Timestamp().Logger()

// Setup configures the global log level and, optionally, a log file.
// Tables go to stdout only; every diagnostic goes through here.
func Setup(level, file string) error {
	if len(level) > 0 {
		lv, err := zerolog.ParseLevel(level)
		if err != nil {
			return errors.Wrapf(err, "invalid log level %s", level)
		}
		zerolog.SetGlobalLevel(lv)
	}

	if len(file) > 0 {
		f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return errors.Wrapf(err, "open log file %s", file)
		}
		logger = zerolog.New(f).With().Timestamp().Logger()
	}

	return nil
}

// Errorf .
func Errorf(format string, args ...any) {
	logger.Error().Msgf(format, args...)
}

// Warnf .
func Warnf(format string, args ...any) {
	logger.Warn().Msgf(format, args...)
}

// Infof .
func Infof(format string, args ...any) {
	logger.Info().Msgf(format, args...)
}

// Debugf .
func Debugf(format string, args ...any) {
	logger.Debug().Msgf(format, args...)
}
