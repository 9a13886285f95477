package handler

import (
	"io"
	"runtime/debug"
	"strconv"

	"github.com/fatih/color"

	"github.com/loglane/loglane/core"
	"github.com/loglane/loglane/formatter"
)

// RichConsoleHandler writes colorized, human-oriented log entries to a
// stream. Unlike ConsoleHandler it renders its own layout: a dim
// timestamp, a colored level badge, the logger name and the message with
// its fields. With RichTracebacks enabled, entries at ERROR or above are
// followed by a stack trace of the logging call.
type RichConsoleHandler struct {
	sinkBase
	writer         io.Writer
	markup         bool
	richTracebacks bool
	timeColor      *color.Color
	levelColors    map[core.Level]*color.Color
}

// RichConsoleConfig holds configuration for rich console handler
type RichConsoleConfig struct {
	// Writer to write to (default: color.Output, a colorable stdout)
	Writer io.Writer
	// Level is the minimum severity threshold (default: DebugLevel)
	Level core.Level
	// Formatter is kept for threshold/formatter reassignment symmetry
	// with other handlers; rich rendering does not consult it.
	Formatter formatter.Formatter
	// Markup enables ANSI color output
	Markup bool
	// RichTracebacks appends a stack trace to ERROR and CRITICAL entries
	RichTracebacks bool
}

// NewRichConsoleHandler creates a new rich console handler
func NewRichConsoleHandler(cfg RichConsoleConfig) *RichConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = color.Output
	}

	h := &RichConsoleHandler{
		writer:         cfg.Writer,
		markup:         cfg.Markup,
		richTracebacks: cfg.RichTracebacks,
		timeColor:      color.New(color.Faint),
		levelColors: map[core.Level]*color.Color{
			core.DebugLevel:    color.New(color.FgCyan),
			core.InfoLevel:     color.New(color.FgGreen),
			core.WarnLevel:     color.New(color.FgYellow),
			core.ErrorLevel:    color.New(color.FgRed),
			core.CriticalLevel: color.New(color.FgRed, color.Bold),
		},
	}
	h.init(cfg.Level, cfg.Formatter)

	// Color decisions are per handler, not per process: markup wins over
	// the package-global NoColor detection so output stays deterministic.
	for _, c := range h.levelColors {
		if h.markup {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	if h.markup {
		h.timeColor.EnableColor()
	} else {
		h.timeColor.DisableColor()
	}

	return h
}

// Handle processes a log entry
func (h *RichConsoleHandler) Handle(entry *core.Entry) error {
	if !h.enabled(entry.Level) {
		return nil
	}

	lc, ok := h.levelColors[entry.Level]
	if !ok {
		lc = h.levelColors[core.InfoLevel]
	}

	buf := make([]byte, 0, 128)
	buf = append(buf, h.timeColor.Sprint(entry.Time.Format("15:04:05"))...)
	buf = append(buf, ' ')
	buf = append(buf, lc.Sprintf("%-8s", entry.Level.String())...)
	buf = append(buf, ' ')
	if entry.Logger != "" {
		buf = append(buf, entry.Logger...)
		buf = append(buf, ' ')
	}
	buf = append(buf, entry.Message...)
	for _, field := range entry.Fields {
		buf = append(buf, ' ')
		buf = append(buf, field.Key...)
		buf = append(buf, '=')
		buf = append(buf, field.StringValue()...)
	}
	if entry.Caller.Defined {
		buf = append(buf, ' ')
		buf = append(buf, h.timeColor.Sprint(entry.Caller.ShortFile+":"+strconv.Itoa(entry.Caller.Line))...)
	}
	buf = append(buf, '\n')

	if h.richTracebacks && entry.Level >= core.ErrorLevel {
		buf = append(buf, debug.Stack()...)
	}

	h.mu.Lock()
	_, err := h.writer.Write(buf)
	h.mu.Unlock()
	return err
}

// Close closes the handler. The underlying stream is not owned by the
// handler and stays open.
func (h *RichConsoleHandler) Close() error {
	return nil
}
