package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestInitLevels(t *testing.T) {
	tests := []struct {
		level   string
		enabled slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			Init(tt.level, "text")
			if !Get().Enabled(context.Background(), tt.enabled) {
				t.Errorf("expected level %v enabled after Init(%q)", tt.enabled, tt.level)
			}
		})
	}
	Init("info", "text")
}

func TestGetReturnsLogger(t *testing.T) {
	Init("info", "json")
	if Get() == nil {
		t.Fatal("expected non-nil logger")
	}
	Init("info", "text")
}
