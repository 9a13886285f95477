package handler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/loglane/loglane/core"
	"github.com/loglane/loglane/formatter"
)

// FileHandler writes log entries to a single file
type FileHandler struct {
	sinkBase
	filename string
	flag     int
	file     *os.File
}

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Level is the minimum severity threshold (default: DebugLevel)
	Level core.Level
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Truncate opens the file truncated instead of appending
	Truncate bool
	// Delay defers opening the file until the first entry is written
	Delay bool
}

// NewFileHandler creates a new file handler. Unless Delay is set, the
// file is opened immediately and open errors fail construction.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}

	flag := os.O_CREATE | os.O_WRONLY
	if cfg.Truncate {
		flag |= os.O_TRUNC
	} else {
		flag |= os.O_APPEND
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(cfg.Filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	h := &FileHandler{
		filename: cfg.Filename,
		flag:     flag,
	}
	h.init(cfg.Level, cfg.Formatter)

	if !cfg.Delay {
		file, err := os.OpenFile(cfg.Filename, flag, 0644)
		if err != nil {
			return nil, err
		}
		h.file = file
	}

	return h, nil
}

// Filename returns the path the handler writes to
func (h *FileHandler) Filename() string {
	return h.filename
}

// Handle processes a log entry
func (h *FileHandler) Handle(entry *core.Entry) error {
	if !h.enabled(entry.Level) {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		file, err := os.OpenFile(h.filename, h.flag, 0644)
		if err != nil {
			return err
		}
		h.file = file
	}

	if h.writerFormatter != nil {
		return h.writerFormatter.FormatTo(entry, h.file)
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.file.Write(data)
	return err
}

// Close closes the handler and the underlying file
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		return nil
	}
	file := h.file
	h.file = nil

	if err := file.Sync(); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
