package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bdreece/errands/internal/utils"
)

// loadFromEnv overrides config from environment variables and tracks the
// source of each value it sets.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) error {
	setEnv := func(field string) {
		sources[field] = SourceEnv
	}

	if v := os.Getenv("ERRANDS_LOCAL_FILE"); v != "" {
		cfg.LocalFile = v
		setEnv("local_file")
	}
	if v := os.Getenv("ERRANDS_USER_FILE"); v != "" {
		cfg.UserFile = v
		setEnv("user_file")
	}
	if v := os.Getenv("ERRANDS_GLOBAL_FILE"); v != "" {
		cfg.GlobalFile = v
		setEnv("global_file")
	}

	// Logging configuration
	if v := os.Getenv("ERRANDS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		setEnv("log_level")
	}
	if v := os.Getenv("ERRANDS_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		setEnv("log_format")
	}
	if v := os.Getenv("ERRANDS_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = utils.ParseBool(v)
		setEnv("log_timestamps")
	}
	if v := os.Getenv("ERRANDS_LOG_CALLER"); v != "" {
		cfg.LogCaller = utils.ParseBool(v)
		setEnv("log_caller")
	}

	// Output
	if v := os.Getenv("ERRANDS_COLOR"); v != "" {
		cfg.Color = utils.ParseBool(v)
		setEnv("color")
	}
	// https://no-color.org
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.Color = false
		setEnv("color")
	}
	if v := os.Getenv("ERRANDS_COLORS"); v != "" {
		if cfg.Colors == nil {
			cfg.Colors = make(map[string]string)
		}
		for name, color := range utils.ParsePairs(v) {
			cfg.Colors[name] = color
		}
		setEnv("colors")
	}
	if v := os.Getenv("ERRANDS_REFRESH_SECONDS"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse ERRANDS_REFRESH_SECONDS: %w", err)
		}
		cfg.RefreshSeconds = i
		setEnv("refresh_seconds")
	}
	return nil
}
