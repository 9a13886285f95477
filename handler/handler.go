package handler

import (
	"io"
	"sync"

	"github.com/loglane/loglane/core"
	"github.com/loglane/loglane/formatter"
)

// Handler defines the interface for log handlers. A handler is a fully
// configured output destination holding its own severity threshold and
// formatter; both can be reassigned after construction, everything else
// is fixed.
type Handler interface {
	// Handle processes a log entry. Entries below the handler's
	// threshold are discarded silently.
	Handle(entry *core.Entry) error

	// Level returns the handler's minimum severity threshold
	Level() core.Level

	// SetLevel replaces the handler's minimum severity threshold
	SetLevel(level core.Level)

	// SetFormatter replaces the handler's formatter
	SetFormatter(f formatter.Formatter)

	// Close closes the handler and releases resources
	Close() error
}

// sinkBase carries the threshold/formatter pair shared by every built-in
// handler. The mutex serializes writes; a handler may be attached to
// several loggers at once.
type sinkBase struct {
	level           core.Level
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	mu              sync.Mutex
}

func (b *sinkBase) init(level core.Level, f formatter.Formatter) {
	if f == nil {
		f = formatter.NewTextFormatter(formatter.Config{})
	}
	b.level = level
	b.setFormatter(f)
}

// Level returns the handler's minimum severity threshold
func (b *sinkBase) Level() core.Level {
	return b.level
}

// SetLevel replaces the handler's minimum severity threshold
func (b *sinkBase) SetLevel(level core.Level) {
	b.level = level
}

// SetFormatter replaces the handler's formatter
func (b *sinkBase) SetFormatter(f formatter.Formatter) {
	b.mu.Lock()
	b.setFormatter(f)
	b.mu.Unlock()
}

func (b *sinkBase) setFormatter(f formatter.Formatter) {
	b.formatter = f
	// Cache WriterFormatter for the direct write path
	b.writerFormatter, _ = f.(formatter.WriterFormatter)
}

// enabled reports whether an entry at the given level passes the threshold
func (b *sinkBase) enabled(level core.Level) bool {
	return level >= b.level
}

// emit formats the entry and writes it to w under the handler lock
func (b *sinkBase) emit(entry *core.Entry, w io.Writer) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.writerFormatter != nil {
		return b.writerFormatter.FormatTo(entry, w)
	}

	data, err := b.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
