package handler

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/loglane/loglane/core"
	"github.com/loglane/loglane/formatter"
)

func TestConsoleHandler_Write(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	defer h.Close()

	entry := core.GetEntry()
	defer core.PutEntry(entry)
	entry.Level = core.InfoLevel
	entry.Message = "test message"

	err := h.Handle(entry)
	if err != nil {
		t.Errorf("Handle() error = %v", err)
	}

	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", buf.String())
	}
}

func TestConsoleHandler_Threshold(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf,
		Level:     core.WarnLevel,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	defer h.Close()

	entry := core.GetEntry()
	defer core.PutEntry(entry)
	entry.Level = core.InfoLevel
	entry.Message = "filtered"

	if err := h.Handle(entry); err != nil {
		t.Errorf("Handle() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected entry below threshold to be dropped, got: %s", buf.String())
	}

	h.SetLevel(core.DebugLevel)
	if err := h.Handle(entry); err != nil {
		t.Errorf("Handle() error = %v", err)
	}
	if !strings.Contains(buf.String(), "filtered") {
		t.Errorf("Expected entry after SetLevel, got: %s", buf.String())
	}
}

func TestConsoleHandler_SetFormatter(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	defer h.Close()

	h.SetFormatter(formatter.NewJSONFormatter(formatter.Config{}))

	entry := core.GetEntry()
	defer core.PutEntry(entry)
	entry.Level = core.InfoLevel
	entry.Message = "as json"

	if err := h.Handle(entry); err != nil {
		t.Errorf("Handle() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"message":"as json"`) {
		t.Errorf("Expected JSON output after SetFormatter, got: %s", buf.String())
	}
}

func TestRichConsoleHandler_Markup(t *testing.T) {
	var buf bytes.Buffer
	h := NewRichConsoleHandler(RichConsoleConfig{
		Writer: &buf,
		Markup: true,
	})
	defer h.Close()

	entry := core.GetEntry()
	defer core.PutEntry(entry)
	entry.Level = core.ErrorLevel
	entry.Logger = "rich_test"
	entry.Message = "colored"

	if err := h.Handle(entry); err != nil {
		t.Errorf("Handle() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "colored") {
		t.Errorf("Expected message in output, got: %s", output)
	}
	if !strings.Contains(output, "\x1b[") {
		t.Errorf("Expected ANSI escapes with markup enabled, got: %q", output)
	}
	if !strings.Contains(output, "rich_test") {
		t.Errorf("Expected logger name in output, got: %s", output)
	}
}

func TestRichConsoleHandler_NoMarkup(t *testing.T) {
	var buf bytes.Buffer
	h := NewRichConsoleHandler(RichConsoleConfig{
		Writer: &buf,
	})
	defer h.Close()

	entry := core.GetEntry()
	defer core.PutEntry(entry)
	entry.Level = core.InfoLevel
	entry.Message = "plain"

	if err := h.Handle(entry); err != nil {
		t.Errorf("Handle() error = %v", err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("Expected no ANSI escapes without markup, got: %q", buf.String())
	}
}

func TestRichConsoleHandler_Tracebacks(t *testing.T) {
	var buf bytes.Buffer
	h := NewRichConsoleHandler(RichConsoleConfig{
		Writer:         &buf,
		RichTracebacks: true,
	})
	defer h.Close()

	entry := core.GetEntry()
	defer core.PutEntry(entry)
	entry.Level = core.CriticalLevel
	entry.Message = "boom"

	if err := h.Handle(entry); err != nil {
		t.Errorf("Handle() error = %v", err)
	}
	if !strings.Contains(buf.String(), "goroutine") {
		t.Errorf("Expected stack trace for critical entry, got: %s", buf.String())
	}

	// Tracebacks only apply at ERROR and above
	buf.Reset()
	entry.Level = core.InfoLevel
	if err := h.Handle(entry); err != nil {
		t.Errorf("Handle() error = %v", err)
	}
	if strings.Contains(buf.String(), "goroutine") {
		t.Errorf("Did not expect stack trace for info entry, got: %s", buf.String())
	}
}

func TestFileHandler_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	h, err := NewFileHandler(FileConfig{
		Filename:  path,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	if err != nil {
		t.Fatalf("NewFileHandler() error = %v", err)
	}

	entry := core.GetEntry()
	defer core.PutEntry(entry)
	entry.Level = core.InfoLevel
	entry.Message = "file test"

	if err := h.Handle(entry); err != nil {
		t.Errorf("Handle() error = %v", err)
	}
	if err := h.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "file test") {
		t.Errorf("Expected 'file test' in file, got: %s", data)
	}
}

func TestFileHandler_Delay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "delayed.log")
	h, err := NewFileHandler(FileConfig{
		Filename: path,
		Delay:    true,
	})
	if err != nil {
		t.Fatalf("NewFileHandler() error = %v", err)
	}
	defer h.Close()

	// File must not exist before the first write
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("Expected no file before first write, stat err = %v", err)
	}

	entry := core.GetEntry()
	defer core.PutEntry(entry)
	entry.Level = core.InfoLevel
	entry.Message = "deferred"

	if err := h.Handle(entry); err != nil {
		t.Errorf("Handle() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected file after first write, stat err = %v", err)
	}
}

func TestFileHandler_Truncate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trunc.log")
	if err := os.WriteFile(path, []byte("old contents\n"), 0644); err != nil {
		t.Fatal(err)
	}

	h, err := NewFileHandler(FileConfig{
		Filename: path,
		Truncate: true,
	})
	if err != nil {
		t.Fatalf("NewFileHandler() error = %v", err)
	}

	entry := core.GetEntry()
	defer core.PutEntry(entry)
	entry.Level = core.InfoLevel
	entry.Message = "fresh"

	if err := h.Handle(entry); err != nil {
		t.Errorf("Handle() error = %v", err)
	}
	if err := h.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "old contents") {
		t.Errorf("Expected truncated file, got: %s", data)
	}
	if !strings.Contains(string(data), "fresh") {
		t.Errorf("Expected 'fresh' in file, got: %s", data)
	}
}

func TestFileHandler_RequiresFilename(t *testing.T) {
	if _, err := NewFileHandler(FileConfig{}); err == nil {
		t.Error("Expected error for missing filename")
	}
}
