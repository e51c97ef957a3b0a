// Package logger configures zerolog for the service: console output in
// development, JSON elsewhere.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var zlog zerolog.Logger

// InitStructured sets up the service logger and replaces zerolog's
// package-level logger, so call sites using rs/zerolog/log inherit the
// service field.
func InitStructured(env string) {
	var w io.Writer = os.Stdout
	level := zerolog.InfoLevel

	if env == "development" || env == "dev" || env == "local" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		level = zerolog.DebugLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(level)

	zlog = zerolog.New(w).With().
		Timestamp().
		Str("service", "hostpicks-backend").
		Logger()
	log.Logger = zlog
}

// GetLogger returns the service logger.
func GetLogger() *zerolog.Logger {
	return &zlog
}

// WithRequestID tags a logger with the request id.
func WithRequestID(requestID string) zerolog.Logger {
	return zlog.With().Str("request_id", requestID).Logger()
}

// WithUserID tags a logger with the acting user id.
func WithUserID(userID string) zerolog.Logger {
	return zlog.With().Str("user_id", userID).Logger()
}
