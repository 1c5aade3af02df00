package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelWarn,
		"chatty":  slog.LevelWarn,
	}
	for raw, want := range tests {
		if got := ParseLevel(raw); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, level := New(&buf, slog.LevelWarn)
	logger.Info("hidden")
	logger.Warn("shown", "key", "5")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("info logged at warn level: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "msg=shown key=5") {
		t.Fatalf("missing warn record: %q", buf.String())
	}

	buf.Reset()
	level.Set(slog.LevelDebug)
	logger.Debug("step")
	if !strings.Contains(buf.String(), "level=DEBUG msg=step") {
		t.Fatalf("debug not logged after level change: %q", buf.String())
	}
}
