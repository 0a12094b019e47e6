package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps LOG_LEVEL (debug|info|warn|error) to a zerolog level.
// Anything else, including an empty string, means info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New returns a human-readable console logger writing to w.
// Diagnostics are for an operator at a terminal, so colors are off and the
// timestamp is short.
func New(w io.Writer, level string) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger()
}
