package handler

import (
	"fmt"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/loglane/loglane/core"
	"github.com/loglane/loglane/formatter"
)

// SizeRotatedFileHandler writes log entries to a file that rolls over
// once it exceeds a size threshold, keeping a bounded number of backups.
// Rotation itself is delegated to lumberjack, which opens the file
// lazily on the first write.
type SizeRotatedFileHandler struct {
	sinkBase
	out *lumberjack.Logger
}

// SizeRotatedFileConfig holds configuration for size-rotated file handler
type SizeRotatedFileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Level is the minimum severity threshold (default: DebugLevel)
	Level core.Level
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// MaxSize is the maximum size in megabytes before rotation
	// (lumberjack's unit; default: 100)
	MaxSize int
	// MaxBackups is the number of rotated files to retain (default: 1)
	MaxBackups int
}

// NewSizeRotatedFileHandler creates a new size-rotated file handler
func NewSizeRotatedFileHandler(cfg SizeRotatedFileConfig) (*SizeRotatedFileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = 100
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 1
	}

	h := &SizeRotatedFileHandler{
		out: &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
		},
	}
	h.init(cfg.Level, cfg.Formatter)
	return h, nil
}

// Handle processes a log entry
func (h *SizeRotatedFileHandler) Handle(entry *core.Entry) error {
	if !h.enabled(entry.Level) {
		return nil
	}
	return h.emit(entry, h.out)
}

// Rotate forces a rollover regardless of the current file size
func (h *SizeRotatedFileHandler) Rotate() error {
	return h.out.Rotate()
}

// Close closes the handler and the underlying file
func (h *SizeRotatedFileHandler) Close() error {
	return h.out.Close()
}
