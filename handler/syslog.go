//go:build !windows && !plan9

package handler

import (
	"log/syslog"
	"strings"

	"github.com/loglane/loglane/core"
	"github.com/loglane/loglane/formatter"
)

// SyslogHandler delivers log entries to a syslog collector. The
// connection is established at construction time; dial errors fail
// construction untranslated.
type SyslogHandler struct {
	sinkBase
	writer *syslog.Writer
}

// SyslogConfig holds configuration for syslog handler
type SyslogConfig struct {
	// Address is the collector address (default: "localhost:514")
	Address string
	// Network is the socket type, "udp" or "tcp" (default: "udp")
	Network string
	// Facility is the syslog facility (default: syslog.LOG_USER).
	// LOG_KERN is the zero value of syslog.Priority, so it reads as
	// unset here and cannot be selected explicitly.
	Facility syslog.Priority
	// Tag is the syslog tag attached to every message
	Tag string
	// Level is the minimum severity threshold (default: DebugLevel)
	Level core.Level
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// NewSyslogHandler creates a new syslog handler
func NewSyslogHandler(cfg SyslogConfig) (*SyslogHandler, error) {
	if cfg.Address == "" {
		cfg.Address = "localhost:514"
	}
	if cfg.Network == "" {
		cfg.Network = "udp"
	}
	if cfg.Facility == 0 {
		cfg.Facility = syslog.LOG_USER
	}

	w, err := syslog.Dial(cfg.Network, cfg.Address, cfg.Facility|syslog.LOG_INFO, cfg.Tag)
	if err != nil {
		return nil, err
	}

	h := &SyslogHandler{writer: w}
	h.init(cfg.Level, cfg.Formatter)
	return h, nil
}

// Handle processes a log entry
func (h *SyslogHandler) Handle(entry *core.Entry) error {
	if !h.enabled(entry.Level) {
		return nil
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	msg := strings.TrimRight(string(data), "\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	// The syslog priority carries the severity; the formatter output is
	// the message body.
	switch entry.Level {
	case core.DebugLevel:
		return h.writer.Debug(msg)
	case core.InfoLevel:
		return h.writer.Info(msg)
	case core.WarnLevel:
		return h.writer.Warning(msg)
	case core.ErrorLevel:
		return h.writer.Err(msg)
	case core.CriticalLevel:
		return h.writer.Crit(msg)
	default:
		return h.writer.Info(msg)
	}
}

// Close closes the handler and the syslog connection
func (h *SyslogHandler) Close() error {
	return h.writer.Close()
}
