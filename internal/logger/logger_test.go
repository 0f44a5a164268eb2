package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"garbage", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{
		Writer:      &buf,
		Environment: "production",
		Level:       slog.LevelInfo,
	})

	log.Info("calendar entry created", "entry_id", "entry-123")

	out := buf.String()
	if !strings.Contains(out, `"msg":"calendar entry created"`) {
		t.Errorf("expected JSON output, got %q", out)
	}
	if !strings.Contains(out, `"entry_id":"entry-123"`) {
		t.Errorf("expected attribute in output, got %q", out)
	}
}

func TestNew_PrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{
		Writer:      &buf,
		Environment: "development",
		Level:       slog.LevelDebug,
	})

	log.Debug("schedule check", "recipe_id", "recipe-1")

	out := buf.String()
	if !strings.Contains(out, "schedule check") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "recipe_id=recipe-1") {
		t.Errorf("expected attribute in output, got %q", out)
	}
}

func TestPrettyHandler_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{
		Writer: &buf,
		Format: "pretty",
		Level:  slog.LevelWarn,
	})

	log.Info("should be suppressed")
	log.Warn("should be visible")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Errorf("info record should be filtered, got %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("warn record should be written, got %q", out)
	}
}
