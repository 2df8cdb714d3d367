package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/bdreece/errands/internal/errands"
)

// Option adjusts how configuration is loaded.
type Option func(*loader)

type loader struct {
	workDir       string
	userConfigDir string
	workDirSet    bool
	userDirSet    bool
	overrides     []override
}

type override struct {
	field string
	apply func(*Config)
}

// WithWorkDir sets the directory searched for the project config file and
// used for the local list. Defaults to the process working directory.
func WithWorkDir(dir string) Option {
	return func(l *loader) {
		l.workDir = dir
		l.workDirSet = true
	}
}

// WithUserConfigDir sets the user config directory. Defaults to
// os.UserConfigDir.
func WithUserConfigDir(dir string) Option {
	return func(l *loader) {
		l.userConfigDir = dir
		l.userDirSet = true
	}
}

// WithOverride applies fn after every other source and records field as
// set by a flag.
func WithOverride(field string, fn func(*Config)) Option {
	return func(l *loader) {
		l.overrides = append(l.overrides, override{field: field, apply: fn})
	}
}

// LoadWithSources loads configuration from multiple sources in priority
// order and tracks the source of each value:
// 1. Defaults
// 2. User config file
// 3. Project config file
// 4. Environment variables
// 5. Overrides (CLI flags)
func LoadWithSources(opts ...Option) (*ConfigWithSources, error) {
	ld := &loader{}
	for _, opt := range opts {
		opt(ld)
	}
	if !ld.workDirSet {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		ld.workDir = wd
	}
	if !ld.userDirSet {
		ld.userConfigDir = userConfigDir()
	}

	cfg := &Config{}
	cws := &ConfigWithSources{
		Config:  cfg,
		Sources: make(map[string]ConfigSource),
	}

	// 1. Set defaults (all fields start with default source)
	setDefaults(cfg)
	for _, field := range configFields() {
		cws.Sources[field] = SourceDefault
	}

	// 2. Try to load from user config file
	if path := findUserConfigFile(ld.userConfigDir); path != "" {
		if err := loadConfigFile(cfg, path, cws.Sources, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
		cws.Files = append(cws.Files, path)
	}

	// 3. Try to load from project config file (overrides user config)
	if path := findProjectConfigFile(ld.workDir); path != "" {
		if err := loadConfigFile(cfg, path, cws.Sources, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", path, err)
		}
		cws.Files = append(cws.Files, path)
	}

	// 4. Override from environment
	if err := loadFromEnv(cfg, cws.Sources); err != nil {
		return nil, err
	}

	// 5. Flags
	for _, o := range ld.overrides {
		o.apply(cfg)
		cws.Sources[o.field] = SourceFlag
	}

	cfg.WorkDir = ld.workDir
	cfg.UserConfigDir = ld.userConfigDir
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}
	return cws, nil
}

// loadConfigFile decodes a TOML file over cfg and marks every key it
// defines with source. Unknown keys are an error.
func loadConfigFile(cfg *Config, path string, sources map[string]ConfigSource, source ConfigSource) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	for _, field := range configFields() {
		if md.IsDefined(field) {
			sources[field] = source
		}
	}
	return nil
}

// finalizeConfig normalizes and validates values after all sources are applied.
func finalizeConfig(cfg *Config) error {
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("invalid log_level %q, must be one of: debug, info, warn, error, fatal", cfg.LogLevel)
	}

	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	switch cfg.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("invalid log_format %q, must be one of: text, json, logfmt", cfg.LogFormat)
	}

	for name := range cfg.Colors {
		if _, err := errands.ParsePriority(name); err != nil {
			return fmt.Errorf("invalid colors key %q, must be one of: %s",
				name, strings.Join(errands.PriorityNames(), ", "))
		}
	}

	if cfg.RefreshSeconds < 0 {
		return fmt.Errorf("refresh_seconds must not be negative")
	}
	return nil
}
