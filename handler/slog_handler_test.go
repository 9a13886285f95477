package handler

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/loglane/loglane/core"
	"github.com/loglane/loglane/formatter"
)

func TestSlogHandler_Enabled(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    &bytes.Buffer{},
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})

	sh := NewSlogHandler(h, core.InfoLevel)

	if sh.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Debug should not be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info should be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("Warn should be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelError) {
		t.Error("Error should be enabled when level is Info")
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})

	sh := NewSlogHandler(h, core.DebugLevel)
	logger := slog.New(sh)

	logger.Info("test message", "key", "value", "count", 42)

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("Expected 'key=value' in output, got: %s", output)
	}
	if !strings.Contains(output, "count=42") {
		t.Errorf("Expected 'count=42' in output, got: %s", output)
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})

	logger := slog.New(NewSlogHandler(h, core.DebugLevel)).
		With("service", "billing").
		WithGroup("req")

	logger.Warn("slow request", "ms", 1200)

	output := buf.String()
	if !strings.Contains(output, "service=billing") {
		t.Errorf("Expected pre-set attr in output, got: %s", output)
	}
	if !strings.Contains(output, "req.ms=1200") {
		t.Errorf("Expected group-prefixed attr in output, got: %s", output)
	}
}

func TestSlogLevelToCore(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want core.Level
	}{
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 4, core.CriticalLevel},
	}
	for _, tt := range tests {
		if got := slogLevelToCore(tt.in); got != tt.want {
			t.Errorf("slogLevelToCore(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
