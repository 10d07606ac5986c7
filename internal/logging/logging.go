// Package logging configures the structured logger shared by the application
// and benchmark layers. The arithmetic core never logs; value types stay
// pure and report failures through errors alone.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing human-readable console output to w. Verbose
// enables debug-level events; otherwise only info and above are emitted.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// Nop returns a logger that discards everything, for quiet mode and tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
