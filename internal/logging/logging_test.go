package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/bdreece/errands/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"bogus", log.WarnLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormatter(t *testing.T) {
	if ParseFormatter("json") != log.JSONFormatter {
		t.Error("json formatter")
	}
	if ParseFormatter("logfmt") != log.LogfmtFormatter {
		t.Error("logfmt formatter")
	}
	if ParseFormatter("") != log.TextFormatter {
		t.Error("default formatter")
	}
}

func TestVerbose(t *testing.T) {
	tests := []struct {
		level     log.Level
		verbosity int
		want      log.Level
	}{
		{log.WarnLevel, 0, log.WarnLevel},
		{log.WarnLevel, 1, log.InfoLevel},
		{log.WarnLevel, 2, log.DebugLevel},
		{log.WarnLevel, 5, log.DebugLevel},
		{log.DebugLevel, 1, log.DebugLevel},
		{log.ErrorLevel, 1, log.InfoLevel},
		{log.ErrorLevel, 0, log.ErrorLevel},
		{log.DebugLevel, 2, log.DebugLevel},
	}
	for _, tt := range tests {
		if got := Verbose(tt.level, tt.verbosity); got != tt.want {
			t.Errorf("Verbose(%v, %d) = %v, want %v", tt.level, tt.verbosity, got, tt.want)
		}
	}
}

func TestFromConfig(t *testing.T) {
	cfg := &config.Config{LogLevel: "warn", LogFormat: "logfmt"}

	var buf bytes.Buffer
	logger := FromConfig(&buf, cfg, 0)
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info logged at warn level: %q", buf.String())
	}

	buf.Reset()
	logger = FromConfig(&buf, cfg, 2)
	logger.Debug("probing", "path", "errands.yml")
	out := buf.String()
	for _, want := range []string{"level=debug", "prefix=errands", "msg=probing", "path=errands.yml"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}
