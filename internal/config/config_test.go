package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bdreece/errands/internal/errands"
	"github.com/bdreece/errands/internal/location"
)

// isolate clears the environment variables Load reads and returns a work
// dir and user config dir under a temp root.
func isolate(t *testing.T) (workDir, userDir string) {
	t.Helper()
	for _, name := range []string{
		"ERRANDS_LOCAL_FILE", "ERRANDS_USER_FILE", "ERRANDS_GLOBAL_FILE",
		"ERRANDS_LOG_LEVEL", "ERRANDS_LOG_FORMAT", "ERRANDS_LOG_TIMESTAMPS",
		"ERRANDS_LOG_CALLER", "ERRANDS_COLOR", "ERRANDS_COLORS",
		"ERRANDS_REFRESH_SECONDS", "NO_COLOR",
	} {
		t.Setenv(name, "")
	}
	root := t.TempDir()
	workDir = filepath.Join(root, "work")
	userDir = filepath.Join(root, "config")
	for _, dir := range []string{workDir, filepath.Join(userDir, "errands")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
	return workDir, userDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaults(t *testing.T) {
	workDir, userDir := isolate(t)

	cws, err := LoadWithSources(WithWorkDir(workDir), WithUserConfigDir(userDir))
	if err != nil {
		t.Fatalf("LoadWithSources: %v", err)
	}
	cfg := cws.Config
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.LogFormat != DefaultLogFormat {
		t.Errorf("LogFormat: got %q, want %q", cfg.LogFormat, DefaultLogFormat)
	}
	if !cfg.Color {
		t.Error("Color: got false, want true")
	}
	if diff := cmp.Diff(DefaultColors(), cfg.Colors); diff != "" {
		t.Errorf("Colors mismatch (-want +got):\n%s", diff)
	}
	for _, field := range configFields() {
		if cws.Sources[field] != SourceDefault {
			t.Errorf("source of %s: got %q, want default", field, cws.Sources[field])
		}
	}
	if cws.GetConfigFile() != "" {
		t.Errorf("GetConfigFile: got %q, want empty", cws.GetConfigFile())
	}
}

func TestProjectFileOverridesUserFile(t *testing.T) {
	workDir, userDir := isolate(t)
	userFile := filepath.Join(userDir, "errands", ConfigFileName)
	writeFile(t, userFile, `
log_level = "info"
log_format = "json"
local_file = "user.yml"
`)
	projFile := filepath.Join(workDir, "."+ConfigFileName)
	writeFile(t, projFile, `
log_level = "debug"

[colors]
Urgent = "#ff0000"
`)

	cws, err := LoadWithSources(WithWorkDir(workDir), WithUserConfigDir(userDir))
	if err != nil {
		t.Fatalf("LoadWithSources: %v", err)
	}
	cfg := cws.Config
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat: got %q, want json", cfg.LogFormat)
	}
	if cfg.Colors["Urgent"] != "#ff0000" || cfg.Colors["Routine"] != DefaultColors()["Routine"] {
		t.Errorf("Colors not merged: %v", cfg.Colors)
	}

	wantSources := map[string]ConfigSource{
		"log_level":  SourceProjFile,
		"log_format": SourceUserFile,
		"local_file": SourceUserFile,
		"colors":     SourceProjFile,
		"color":      SourceDefault,
	}
	for field, want := range wantSources {
		if got := cws.Sources[field]; got != want {
			t.Errorf("source of %s: got %q, want %q", field, got, want)
		}
	}
	if diff := cmp.Diff([]string{userFile, projFile}, cws.Files); diff != "" {
		t.Errorf("Files mismatch (-want +got):\n%s", diff)
	}
	if got := cws.GetConfigFile(); got != projFile {
		t.Errorf("GetConfigFile: got %q, want %q", got, projFile)
	}
	if got := cfg.Paths().Local; got != filepath.Join(workDir, "user.yml") {
		t.Errorf("Paths().Local: got %q", got)
	}
}

func TestEnvOverridesFiles(t *testing.T) {
	workDir, userDir := isolate(t)
	writeFile(t, filepath.Join(workDir, ConfigFileName), `
log_level = "debug"
color = true
`)
	t.Setenv("ERRANDS_LOG_LEVEL", "error")
	t.Setenv("ERRANDS_LOG_CALLER", "yes")
	t.Setenv("ERRANDS_COLORS", "High=3, Deferred=5")
	t.Setenv("ERRANDS_GLOBAL_FILE", "/srv/errands.yml")
	t.Setenv("NO_COLOR", "1")

	cws, err := LoadWithSources(WithWorkDir(workDir), WithUserConfigDir(userDir))
	if err != nil {
		t.Fatalf("LoadWithSources: %v", err)
	}
	cfg := cws.Config
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel: got %q, want error", cfg.LogLevel)
	}
	if !cfg.LogCaller {
		t.Error("LogCaller: got false, want true")
	}
	if cfg.Color {
		t.Error("Color: NO_COLOR should disable colors")
	}
	if cfg.Colors["High"] != "3" || cfg.Colors["Deferred"] != "5" {
		t.Errorf("Colors: got %v", cfg.Colors)
	}
	if got := cfg.Paths().Global; got != "/srv/errands.yml" {
		t.Errorf("Paths().Global: got %q", got)
	}
	for _, field := range []string{"log_level", "log_caller", "color", "colors", "global_file"} {
		if cws.Sources[field] != SourceEnv {
			t.Errorf("source of %s: got %q, want environment", field, cws.Sources[field])
		}
	}
}

func TestOverridesWin(t *testing.T) {
	workDir, userDir := isolate(t)
	t.Setenv("ERRANDS_LOG_FORMAT", "json")

	cws, err := LoadWithSources(
		WithWorkDir(workDir),
		WithUserConfigDir(userDir),
		WithOverride("log_format", func(c *Config) { c.LogFormat = "logfmt" }),
		WithOverride("color", func(c *Config) { c.Color = false }),
	)
	if err != nil {
		t.Fatalf("LoadWithSources: %v", err)
	}
	if cws.Config.LogFormat != "logfmt" {
		t.Errorf("LogFormat: got %q, want logfmt", cws.Config.LogFormat)
	}
	if cws.Config.Color {
		t.Error("Color: got true, want false")
	}
	if cws.Sources["log_format"] != SourceFlag || cws.Sources["color"] != SourceFlag {
		t.Errorf("sources: %v", cws.Sources)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		wantErr string
	}{
		{name: "malformed toml", content: "log_level = ", wantErr: "loading project config file"},
		{name: "unknown key", content: "todo_file = \"x\"\n", wantErr: "unknown keys: todo_file"},
		{name: "bad level", content: "log_level = \"loud\"\n", wantErr: "invalid log_level"},
		{name: "bad format", content: "log_format = \"xml\"\n", wantErr: "invalid log_format"},
		{name: "bad colors key", content: "[colors]\nSomeday = \"1\"\n", wantErr: "invalid colors key"},
		{name: "bad refresh env", env: map[string]string{"ERRANDS_REFRESH_SECONDS": "soon"}, wantErr: "ERRANDS_REFRESH_SECONDS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workDir, userDir := isolate(t)
			if tt.content != "" {
				writeFile(t, filepath.Join(workDir, ConfigFileName), tt.content)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadWithSources(WithWorkDir(workDir), WithUserConfigDir(userDir))
			if err == nil {
				t.Fatal("LoadWithSources: expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadWithSources error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestPaths(t *testing.T) {
	cfg := &Config{WorkDir: "/work", UserConfigDir: "/home/me/.config"}
	want := location.DefaultPaths("/work", "/home/me/.config")
	if diff := cmp.Diff(want, cfg.Paths()); diff != "" {
		t.Errorf("default Paths mismatch (-want +got):\n%s", diff)
	}

	t.Setenv("ERRANDS_TEST_ROOT", "/data")
	cfg.UserFile = "lists/mine.yml"
	cfg.GlobalFile = "$ERRANDS_TEST_ROOT/all.yml"
	got := cfg.Paths()
	if got.User != filepath.Join("/home/me/.config", "lists", "mine.yml") {
		t.Errorf("User: got %q", got.User)
	}
	if got.Global != "/data/all.yml" {
		t.Errorf("Global: got %q", got.Global)
	}
}

func TestPriorityColors(t *testing.T) {
	cfg := &Config{Colors: map[string]string{"urgent": "1", "Deferred": "5", "bogus": "2"}}
	want := map[errands.Priority]string{errands.Urgent: "1", errands.Deferred: "5"}
	if diff := cmp.Diff(want, cfg.PriorityColors()); diff != "" {
		t.Errorf("PriorityColors mismatch (-want +got):\n%s", diff)
	}
}

func TestExampleConfigLoads(t *testing.T) {
	workDir, userDir := isolate(t)
	writeFile(t, filepath.Join(workDir, ConfigFileName), ExampleConfig())
	if _, err := LoadWithSources(WithWorkDir(workDir), WithUserConfigDir(userDir)); err != nil {
		t.Fatalf("example config does not load: %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandPath("~/errands.yml"); got != filepath.Join(home, "errands.yml") {
		t.Errorf("expandPath: got %q", got)
	}
	if got := expandPath(""); got != "" {
		t.Errorf("expandPath(\"\"): got %q", got)
	}
}
