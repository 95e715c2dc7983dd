// Package logging builds the console logger used by the command line.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a logger.
type Option func(*options)

type options struct {
	out     io.Writer
	level   zerolog.Level
	noColor bool
	json    bool
}

// WithOutput sets the log destination. Defaults to stderr.
func WithOutput(out io.Writer) Option {
	return func(o *options) {
		o.out = out
	}
}

// WithLevel sets the minimum level.
func WithLevel(level zerolog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithNoColor disables ANSI colors.
func WithNoColor(noColor bool) Option {
	return func(o *options) {
		o.noColor = noColor
	}
}

// WithJSON writes structured JSON lines instead of console output.
func WithJSON(json bool) Option {
	return func(o *options) {
		o.json = json
	}
}

// Level maps the number of --verbose flags to a level.
func Level(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// New returns a logger writing to the configured output.
func New(opts ...Option) zerolog.Logger {
	o := &options{out: os.Stderr, level: zerolog.WarnLevel}
	for _, opt := range opts {
		opt(o)
	}
	if o.json {
		return zerolog.New(o.out).Level(o.level).With().Timestamp().Logger()
	}
	console := zerolog.ConsoleWriter{
		Out:        o.out,
		NoColor:    o.noColor,
		TimeFormat: time.TimeOnly,
	}
	console.FormatLevel = func(i any) string {
		return strings.ToUpper(fmt.Sprintf("| %-5s|", i))
	}
	console.FormatFieldName = func(i any) string {
		return fmt.Sprintf("%s=", i)
	}
	return zerolog.New(console).Level(o.level).With().Timestamp().Logger()
}
