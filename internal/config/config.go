package config

import (
	"github.com/bdreece/errands/internal/errands"
	"github.com/bdreece/errands/internal/location"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource

	// Files lists the config files that were read, in load order.
	Files []string
}

// Default values.
const (
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = "text"
	DefaultRefreshSeconds = 2
	ConfigFileName        = "errands.toml"
)

// DefaultColors returns the ANSI color for each priority.
func DefaultColors() map[string]string {
	return map[string]string{
		errands.Emergency.String(): "15",
		errands.Urgent.String():    "9",
		errands.High.String():      "11",
		errands.Medium.String():    "10",
		errands.Routine.String():   "14",
		errands.Deferred.String():  "13",
	}
}

// Config holds the full configuration for errands.
type Config struct {
	// List file overrides; empty means the location default.
	LocalFile  string `toml:"local_file"`
	UserFile   string `toml:"user_file"`
	GlobalFile string `toml:"global_file"`

	// Logging
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Output
	Color  bool              `toml:"color"`
	Colors map[string]string `toml:"colors"`

	// Viewer refresh interval
	RefreshSeconds int `toml:"refresh_seconds"`

	// Computed
	WorkDir       string `toml:"-"`
	UserConfigDir string `toml:"-"`
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"local_file",
		"user_file",
		"global_file",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
		"color",
		"colors",
		"refresh_seconds",
	}
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.Color = true
	cfg.Colors = DefaultColors()
	cfg.RefreshSeconds = DefaultRefreshSeconds
}

// Paths returns the list file path for each location. Configured files
// replace the defaults; relative local files resolve against WorkDir.
func (c *Config) Paths() location.Paths {
	p := location.DefaultPaths(c.WorkDir, c.UserConfigDir)
	if c.LocalFile != "" {
		p.Local = resolvePath(c.WorkDir, c.LocalFile)
	}
	if c.UserFile != "" {
		p.User = resolvePath(c.UserConfigDir, c.UserFile)
	}
	if c.GlobalFile != "" {
		p.Global = resolvePath(location.GlobalRoot, c.GlobalFile)
	}
	return p
}

// PriorityColors returns the color for each priority, keyed by priority.
// Keys that do not name a priority are skipped.
func (c *Config) PriorityColors() map[errands.Priority]string {
	colors := make(map[errands.Priority]string, len(c.Colors))
	for name, color := range c.Colors {
		p, err := errands.ParsePriority(name)
		if err != nil {
			continue
		}
		colors[p] = color
	}
	return colors
}
