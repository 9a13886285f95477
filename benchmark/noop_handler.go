package benchmark

import (
	"github.com/loglane/loglane/core"
	"github.com/loglane/loglane/formatter"
	"github.com/loglane/loglane/handler"
)

// noopHandler measures dispatch overhead without formatting or I/O.
type noopHandler struct {
	level core.Level
}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (h *noopHandler) Level() core.Level { return h.level }

func (h *noopHandler) SetLevel(level core.Level) { h.level = level }

func (h *noopHandler) SetFormatter(formatter.Formatter) {}

func (h *noopHandler) Close() error { return nil }
