package logger

import (
	"fmt"
	"sync"

	"github.com/loglane/loglane/core"
	"github.com/loglane/loglane/handler"
)

// Logger is a named logging instance with an attachable set of handlers.
// Every entry that passes the logger's level is offered to each attached
// handler, which applies its own threshold.
//
// The handler set and the level are plain fields without locking; callers
// that mutate a shared Logger from several goroutines must synchronize
// externally. Handlers serialize their own writes.
type Logger struct {
	name      string
	level     core.Level
	handlers  []handler.Handler
	propagate bool
	registry  *Registry
}

// New creates a standalone logger that belongs to no registry
func New(name string) *Logger {
	return &Logger{
		name:      name,
		level:     core.InfoLevel,
		propagate: true,
	}
}

// Name returns the logger's name
func (l *Logger) Name() string {
	return l.name
}

// Level returns the logger's severity threshold
func (l *Logger) Level() core.Level {
	return l.level
}

// SetLevel sets the logger's severity threshold
func (l *Logger) SetLevel(level core.Level) {
	l.level = level
}

// Propagate reports whether entries are forwarded to the root logger
func (l *Logger) Propagate() bool {
	return l.propagate
}

// SetPropagate controls forwarding of entries to the root logger
func (l *Logger) SetPropagate(propagate bool) {
	l.propagate = propagate
}

// Attach adds a handler to the logger. Attaching an already attached
// handler is a no-op.
func (l *Logger) Attach(h handler.Handler) {
	for _, existing := range l.handlers {
		if existing == h {
			return
		}
	}
	l.handlers = append(l.handlers, h)
}

// Detach removes a handler from the logger. Detaching a handler that is
// not attached is a no-op.
func (l *Logger) Detach(h handler.Handler) {
	for i, existing := range l.handlers {
		if existing == h {
			l.handlers = append(l.handlers[:i], l.handlers[i+1:]...)
			return
		}
	}
}

// ClearHandlers detaches every handler from the logger
func (l *Logger) ClearHandlers() {
	l.handlers = l.handlers[:0]
}

// Handlers returns a copy of the attached handler set
func (l *Logger) Handlers() []handler.Handler {
	out := make([]handler.Handler, len(l.handlers))
	copy(out, l.handlers)
	return out
}

// log builds an entry and dispatches it to the attached handlers,
// forwarding to the root logger's handlers when propagation is on.
func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	if level < l.level {
		return
	}

	entry := core.GetEntry()
	entry.Level = level
	entry.Logger = l.name
	entry.Message = msg
	entry.Caller = core.GetCaller(3)
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}

	for _, h := range l.handlers {
		_ = h.Handle(entry)
	}
	if l.propagate && l.registry != nil && l.name != "" {
		for _, h := range l.registry.Root().handlers {
			_ = h.Handle(entry)
		}
	}

	core.PutEntry(entry)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	l.log(core.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	l.log(core.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	l.log(core.WarnLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	l.log(core.ErrorLevel, msg, fields)
}

// Critical logs a critical message
func (l *Logger) Critical(msg string, fields ...core.Field) {
	l.log(core.CriticalLevel, msg, fields)
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, args ...interface{}) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Criticalf logs a formatted critical message
func (l *Logger) Criticalf(format string, args ...interface{}) {
	if core.CriticalLevel < l.level {
		return
	}
	l.log(core.CriticalLevel, fmt.Sprintf(format, args...), nil)
}

// Registry is an explicit process-level map of logger names to Logger
// instances. Getting the same name twice returns the same instance.
// Passing a Registry around instead of relying on process-global lookup
// keeps tests and embedded uses isolated from each other.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger
	root    *Logger
}

// NewRegistry creates an empty registry with its own root logger
func NewRegistry() *Registry {
	r := &Registry{
		loggers: make(map[string]*Logger),
	}
	r.root = &Logger{
		name:     "",
		level:    core.WarnLevel,
		registry: r,
	}
	return r
}

// Get returns the logger bound to name, creating it on first use.
// The empty name returns the root logger.
func (r *Registry) Get(name string) *Logger {
	if name == "" {
		return r.root
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.loggers[name]; ok {
		return l
	}
	l := &Logger{
		name:      name,
		level:     core.InfoLevel,
		propagate: true,
		registry:  r,
	}
	r.loggers[name] = l
	return l
}

// Root returns the registry's root logger
func (r *Registry) Root() *Logger {
	return r.root
}

var processRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry
func DefaultRegistry() *Registry {
	return processRegistry
}

// GetLogger returns a named logger from the process-wide registry
func GetLogger(name string) *Logger {
	return processRegistry.Get(name)
}
