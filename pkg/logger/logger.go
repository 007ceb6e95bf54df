package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process-wide logger. JSON to stdout by default; pretty
// enables the human-readable console writer for local development.
func New(level string, pretty bool) zerolog.Logger {
	var out io.Writer = os.Stdout
	if pretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(toLevel(level)).With().Timestamp().Caller().Logger()
}

// NewWithWriter builds a logger against an arbitrary writer. Tests use
// this to capture output in a buffer.
func NewWithWriter(level string, out io.Writer) zerolog.Logger {
	return zerolog.New(out).Level(toLevel(level)).With().Timestamp().Logger()
}

// toLevel maps a config string to a zerolog level, defaulting to info for
// anything unrecognized rather than failing startup.
func toLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
