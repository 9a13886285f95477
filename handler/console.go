package handler

import (
	"io"
	"os"

	"github.com/loglane/loglane/core"
	"github.com/loglane/loglane/formatter"
)

// ConsoleHandler writes formatted log entries to a stream
type ConsoleHandler struct {
	sinkBase
	writer io.Writer
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Level is the minimum severity threshold (default: DebugLevel)
	Level core.Level
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}

	h := &ConsoleHandler{writer: cfg.Writer}
	h.init(cfg.Level, cfg.Formatter)
	return h
}

// Handle processes a log entry
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if !h.enabled(entry.Level) {
		return nil
	}
	return h.emit(entry, h.writer)
}

// Close closes the handler. The underlying stream is not owned by the
// handler and stays open.
func (h *ConsoleHandler) Close() error {
	return nil
}
