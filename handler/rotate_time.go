package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/loglane/loglane/core"
	"github.com/loglane/loglane/formatter"
)

// TimeRotatedFileHandler writes log entries to a file that rolls over on
// a wall-clock schedule. Rotated files keep the active filename plus a
// timestamp suffix; when MaxBackups is set the oldest backups are removed
// after each rollover.
type TimeRotatedFileHandler struct {
	sinkBase
	filename   string
	file       *os.File
	interval   time.Duration
	days       int
	daily      bool
	utc        bool
	at         time.Duration
	maxBackups int
	nextRotate time.Time
}

// TimeRotatedFileConfig holds configuration for time-rotated file handler
type TimeRotatedFileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Level is the minimum severity threshold (default: DebugLevel)
	Level core.Level
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// When selects the rotation unit: "s", "m", "h", "d" or "midnight"
	// (default: "h")
	When string
	// Interval is the number of units between rollovers (default: 1)
	Interval int
	// MaxBackups is the number of rotated files to retain (0 = keep all)
	MaxBackups int
	// UTC schedules rollovers on UTC wall-clock time instead of local
	UTC bool
	// At is the rollover time of day in "15:04" form; only consulted for
	// "d" and "midnight" rotation
	At string
}

// NewTimeRotatedFileHandler creates a new time-rotated file handler
func NewTimeRotatedFileHandler(cfg TimeRotatedFileConfig) (*TimeRotatedFileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 1
	}
	if cfg.When == "" {
		cfg.When = "h"
	}

	h := &TimeRotatedFileHandler{
		filename:   cfg.Filename,
		utc:        cfg.UTC,
		maxBackups: cfg.MaxBackups,
	}
	h.init(cfg.Level, cfg.Formatter)

	switch strings.ToLower(cfg.When) {
	case "s":
		h.interval = time.Duration(cfg.Interval) * time.Second
	case "m":
		h.interval = time.Duration(cfg.Interval) * time.Minute
	case "h":
		h.interval = time.Duration(cfg.Interval) * time.Hour
	case "d", "midnight":
		h.daily = true
		h.days = cfg.Interval
	default:
		return nil, fmt.Errorf("invalid rotation unit %q", cfg.When)
	}

	if cfg.At != "" {
		at, err := time.Parse("15:04", cfg.At)
		if err != nil {
			return nil, fmt.Errorf("invalid rotation time %q: %w", cfg.At, err)
		}
		h.at = time.Duration(at.Hour())*time.Hour + time.Duration(at.Minute())*time.Minute
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(cfg.Filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	h.file = file
	h.nextRotate = h.computeNextRotate(h.now())

	return h, nil
}

func (h *TimeRotatedFileHandler) now() time.Time {
	if h.utc {
		return time.Now().UTC()
	}
	return time.Now()
}

// computeNextRotate returns the first rollover instant after now
func (h *TimeRotatedFileHandler) computeNextRotate(now time.Time) time.Time {
	if !h.daily {
		return now.Add(h.interval)
	}

	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(h.at)
	for !next.After(now) {
		next = next.AddDate(0, 0, h.days)
	}
	return next
}

// Handle processes a log entry
func (h *TimeRotatedFileHandler) Handle(entry *core.Entry) error {
	if !h.enabled(entry.Level) {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if now := h.now(); !now.Before(h.nextRotate) {
		if err := h.rotate(now); err != nil {
			return err
		}
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

// rotate performs the actual file rotation
func (h *TimeRotatedFileHandler) rotate(now time.Time) error {
	// Sync and close current file
	if err := h.file.Sync(); err != nil {
		return err
	}
	if err := h.file.Close(); err != nil {
		return err
	}

	// Rename current file with timestamp
	timestamp := now.Format("2006-01-02T15-04-05")
	rotatedName := fmt.Sprintf("%s.%s", h.filename, timestamp)

	if err := os.Rename(h.filename, rotatedName); err != nil {
		// If rename fails, try to reopen the original file
		file, openErr := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if openErr != nil {
			return fmt.Errorf("rotation failed: %v, reopen failed: %v", err, openErr)
		}
		h.file = file
		return err
	}

	// Clean up old backups if needed
	if h.maxBackups > 0 {
		h.cleanupOldBackups()
	}

	// Open new file
	file, err := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	h.file = file
	h.nextRotate = h.computeNextRotate(now)

	return nil
}

// cleanupOldBackups removes old backup files based on MaxBackups
func (h *TimeRotatedFileHandler) cleanupOldBackups() {
	dir := filepath.Dir(h.filename)
	base := filepath.Base(h.filename)

	// Find all backup files
	pattern := filepath.Join(dir, base+".*")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return
	}

	// Filter to only timestamp-based backups
	var backups []string
	for _, match := range matches {
		if strings.HasPrefix(filepath.Base(match), base+".") {
			backups = append(backups, match)
		}
	}

	// Sort by modification time (oldest first)
	sort.Slice(backups, func(i, j int) bool {
		infoI, errI := os.Stat(backups[i])
		infoJ, errJ := os.Stat(backups[j])
		if errI != nil || errJ != nil {
			return false
		}
		return infoI.ModTime().Before(infoJ.ModTime())
	})

	// Remove oldest files if we exceed MaxBackups
	if len(backups) > h.maxBackups {
		toRemove := backups[:len(backups)-h.maxBackups]
		for _, file := range toRemove {
			err := os.Remove(file)
			if err != nil {
				return
			}
		}
	}
}

// Close closes the handler and the underlying file
func (h *TimeRotatedFileHandler) Close() error {
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
