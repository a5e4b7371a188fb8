// Package logger holds the process-wide structured logger for the kit.
//
// Nothing in gamekit ever aborts the host's frame loop: anomalies degrade to
// a logged event plus a best-effort fallback value, and all of those events
// flow through this package. Embedding engines that already run zerolog can
// route the kit's output into their own pipeline with SetLogger.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	SetConsoleWriter()
}

// Log returns the kit's logger for direct use.
func Log() *zerolog.Logger {
	return &log
}

// SetLogger replaces the kit's logger wholesale.
func SetLogger(l zerolog.Logger) {
	log = l
}

// SetWriter replaces the output destination with a plain JSON writer.
func SetWriter(w io.Writer) {
	log = zerolog.New(w).With().Timestamp().Logger()
}

// SetConsoleWriter switches output to a human-readable console writer on
// stderr. This is the default at startup.
func SetConsoleWriter() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// Warn starts a warning event.
func Warn() *zerolog.Event {
	return log.Warn()
}

// Error starts an error event.
func Error() *zerolog.Event {
	return log.Error()
}

// Debug starts a debug event.
func Debug() *zerolog.Event {
	return log.Debug()
}
