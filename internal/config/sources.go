package config

import (
	"os"
	"path/filepath"
)

// findProjectConfigFile looks for a config file in dir.
func findProjectConfigFile(dir string) string {
	names := []string{ConfigFileName, "." + ConfigFileName}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// findUserConfigFile looks for errands/errands.toml under the user config
// directory.
func findUserConfigFile(userConfigDir string) string {
	if userConfigDir == "" {
		return ""
	}
	path := filepath.Join(userConfigDir, "errands", ConfigFileName)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path
	}
	return ""
}

// userConfigDir returns the OS-specific user config directory, or "" if it
// cannot be determined.
func userConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return dir
}

// GetConfigFile returns the config file with the highest precedence that was
// read, or "" when only defaults and the environment were used.
func (cws *ConfigWithSources) GetConfigFile() string {
	if len(cws.Files) == 0 {
		return ""
	}
	return cws.Files[len(cws.Files)-1]
}
