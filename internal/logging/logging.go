// Package logging builds the console logger used for tracing.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/bdreece/errands/internal/config"
)

// Prefix is prepended to every log line.
const Prefix = "errands"

// Options holds configuration for console logging.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	ReportCaller    bool
	Prefix          string
}

// DefaultOptions returns default options for console logging.
func DefaultOptions() Options {
	return Options{
		Level:     log.WarnLevel,
		Formatter: log.TextFormatter,
		Prefix:    Prefix,
	}
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		ReportCaller:    opts.ReportCaller,
		Prefix:          opts.Prefix,
	})
}

// FromConfig creates a logger from the logging settings in cfg, with the
// threshold lowered by Verbose.
func FromConfig(w io.Writer, cfg *config.Config, verbosity int) *log.Logger {
	opts := DefaultOptions()
	opts.Level = Verbose(ParseLevel(cfg.LogLevel), verbosity)
	opts.Formatter = ParseFormatter(cfg.LogFormat)
	opts.ReportTimestamp = cfg.LogTimestamps
	opts.ReportCaller = cfg.LogCaller
	return New(w, opts)
}

// Verbose clamps level to a floor picked by verbosity: info for 1, debug
// for 2 or more. A level already below the floor is kept, and verbosity 0
// leaves level unchanged.
func Verbose(level log.Level, verbosity int) log.Level {
	var floor log.Level
	switch {
	case verbosity <= 0:
		return level
	case verbosity == 1:
		floor = log.InfoLevel
	default:
		floor = log.DebugLevel
	}
	if floor < level {
		return floor
	}
	return level
}

// ParseLevel parses a string log level to a charmbracelet/log Level.
// Unknown names map to warn.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.WarnLevel
	}
}

// ParseFormatter parses a string formatter name to a charmbracelet/log Formatter.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
