package config

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/loglane/loglane/core"
	"github.com/loglane/loglane/formatter"
	"github.com/loglane/loglane/handler"
	"github.com/loglane/loglane/logger"
)

// Registry keys for the handlers and formatters a Config seeds or
// falls back to.
const (
	ConsoleKey          = "console"
	FileKey             = "file"
	RichConsoleKey      = "rich_console"
	DefaultFormatterKey = "default"
)

// handlerFallback is the lookup order when a requested handler key is
// not registered.
var handlerFallback = [...]string{ConsoleKey, FileKey, RichConsoleKey}

// defaultFormatter is shared by every Config that has not replaced its
// default entry. TextFormatter is stateless, so sharing is safe.
var defaultFormatter = formatter.NewTextFormatter(formatter.Config{
	IncludeLogger: true,
	IncludeCaller: true,
})

// Config owns a registry of named handlers and formatters and keeps a
// live named logger synchronized with them. Construction seeds the
// registries with a default formatter, a rich console handler and a
// file handler rooted in the resolved log directory, then performs the
// initial Setup.
type Config struct {
	name  string
	dir   string
	level string

	registry   *logger.Registry
	formatters map[string]formatter.Formatter
	handlers   map[string]handler.Handler
	live       *logger.Logger

	consoleWriter io.Writer
}

// Option configures a Config before its registries are seeded.
type Option func(*options)

type options struct {
	dir           string
	level         string
	registry      *logger.Registry
	consoleWriter io.Writer
}

// WithDir sets the candidate log directory, resolved relative to the
// current working directory by ResolveLogDir.
func WithDir(dir string) Option {
	return func(o *options) { o.dir = dir }
}

// WithLevel sets the severity name for the initial Setup. An empty or
// unset level defaults to DEBUG.
func WithLevel(level string) Option {
	return func(o *options) { o.level = level }
}

// WithRegistry binds the Config to a logger registry other than the
// process-wide default.
func WithRegistry(r *logger.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithConsoleWriter redirects the seeded console handlers to w instead
// of standard output.
func WithConsoleWriter(w io.Writer) Option {
	return func(o *options) { o.consoleWriter = w }
}

// New builds a Config for the named logger, seeds its formatter and
// handler registries and runs the initial Setup. Any failure leaves no
// usable Config behind.
func New(name string, opts ...Option) (*Config, error) {
	if name == "" {
		name = "default_logger"
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	dir, err := ResolveLogDir(o.dir)
	if err != nil {
		return nil, err
	}

	c := &Config{
		name:          name,
		dir:           dir,
		level:         normalizeLevel(o.level),
		registry:      o.registry,
		consoleWriter: o.consoleWriter,
	}
	if c.registry == nil {
		c.registry = logger.DefaultRegistry()
	}

	c.formatters = map[string]formatter.Formatter{
		DefaultFormatterKey: defaultFormatter,
	}

	level := logger.ParseLevel(c.level)
	rich := handler.NewRichConsoleHandler(handler.RichConsoleConfig{
		Writer:         c.consoleWriter,
		Level:          level,
		Formatter:      c.formatters[DefaultFormatterKey],
		Markup:         true,
		RichTracebacks: true,
	})
	file, err := handler.NewFileHandler(handler.FileConfig{
		Filename:  filepath.Join(dir, name+".log"),
		Level:     level,
		Formatter: c.formatters[DefaultFormatterKey],
	})
	if err != nil {
		return nil, fmt.Errorf("seeding file handler: %w", err)
	}
	c.handlers = map[string]handler.Handler{
		RichConsoleKey: rich,
		FileKey:        file,
	}

	c.Setup(c.name, c.level)
	return c, nil
}

// normalizeLevel applies the empty-level default before parsing. An
// absent level means DEBUG; an unrecognized one falls through to
// ParseLevel's INFO default later.
func normalizeLevel(level string) string {
	if level == "" {
		return "DEBUG"
	}
	return strings.ToUpper(level)
}

// Setup rebinds the live logger to name, sets its severity, detaches
// everything currently attached, disables propagation and attaches
// every handler in the registry. Calling it again with the same
// arguments is a no-op in effect: the logger ends up in the same state.
func (c *Config) Setup(name, level string) {
	if name == "" {
		name = c.name
	}
	c.name = name
	c.level = normalizeLevel(level)

	lg := c.registry.Get(name)
	lg.SetLevel(logger.ParseLevel(c.level))
	lg.ClearHandlers()
	lg.SetPropagate(false)
	for _, h := range c.handlers {
		lg.Attach(h)
	}
	c.live = lg
}

// Logger returns the live logger, or nil before the first Setup.
func (c *Config) Logger() *logger.Logger {
	return c.live
}

// Name returns the live logger name.
func (c *Config) Name() string { return c.name }

// Dir returns the resolved log directory.
func (c *Config) Dir() string { return c.dir }

// Level returns the severity name the live logger was set up with.
func (c *Config) Level() string { return c.level }

// SetHandler registers or replaces the handler stored under key. The
// live logger is not touched; use AddLiveHandler or Setup to attach it.
func (c *Config) SetHandler(key string, h handler.Handler) {
	c.handlers[key] = h
}

// SetFormatter registers or replaces the formatter stored under key.
func (c *Config) SetFormatter(key string, f formatter.Formatter) {
	c.formatters[key] = f
}

// Handler returns the handler registered under key. A miss logs a
// warning and walks the fallback chain; nil is returned only when the
// registry holds none of the fallback handlers either.
func (c *Config) Handler(key string) handler.Handler {
	if h, ok := c.handlers[key]; ok {
		return h
	}
	logger.Warnf("handler %q is not registered, falling back", key)
	for _, k := range handlerFallback {
		if h, ok := c.handlers[k]; ok {
			return h
		}
	}
	return nil
}

// Formatter returns the formatter registered under key, falling back
// to the default formatter with a warning.
func (c *Config) Formatter(key string) formatter.Formatter {
	if f, ok := c.formatters[key]; ok {
		return f
	}
	logger.Warnf("formatter %q is not registered, using the default", key)
	if f, ok := c.formatters[DefaultFormatterKey]; ok {
		return f
	}
	return defaultFormatter
}

// Handlers returns the live handler registry, not a copy. Edits to the
// returned map are edits to the Config.
func (c *Config) Handlers() map[string]handler.Handler {
	return c.handlers
}

// Formatters returns the live formatter registry, not a copy. Edits to
// the returned map are edits to the Config.
func (c *Config) Formatters() map[string]formatter.Formatter {
	return c.formatters
}

// ClearLiveHandlers detaches every handler from the live logger. The
// registry is untouched. It reports false when no live logger exists.
func (c *Config) ClearLiveHandlers() bool {
	if c.live == nil {
		return false
	}
	c.live.ClearHandlers()
	return true
}

// AddLiveHandler attaches the registered handler under key to the live
// logger. It reports false when the key is unregistered or no live
// logger exists.
func (c *Config) AddLiveHandler(key string) bool {
	h, ok := c.handlers[key]
	if !ok {
		logger.Warnf("handler %q is not registered", key)
		return false
	}
	if c.live == nil {
		return false
	}
	c.live.Attach(h)
	return true
}

// RemoveLiveHandler detaches the registered handler under key from the
// live logger. It reports false when the key is unregistered or no
// live logger exists.
func (c *Config) RemoveLiveHandler(key string) bool {
	h, ok := c.handlers[key]
	if !ok {
		logger.Warnf("handler %q is not registered", key)
		return false
	}
	if c.live == nil {
		return false
	}
	c.live.Detach(h)
	return true
}

// ResetHandlers replaces the handler registry with a fresh console
// handler and a fresh file handler rooted at the log directory. The
// live logger keeps whatever it has attached until the next Setup.
func (c *Config) ResetHandlers() error {
	level := logger.ParseLevel(c.level)
	df := c.formatters[DefaultFormatterKey]

	console := handler.NewConsoleHandler(handler.ConsoleConfig{
		Writer:    c.consoleWriter,
		Level:     level,
		Formatter: df,
	})
	file, err := handler.NewFileHandler(handler.FileConfig{
		Filename:  filepath.Join(c.dir, c.name),
		Level:     level,
		Formatter: df,
	})
	if err != nil {
		return fmt.Errorf("reseeding file handler: %w", err)
	}

	c.handlers = map[string]handler.Handler{
		ConsoleKey: console,
		FileKey:    file,
	}
	return nil
}

// ResetFormatters replaces the formatter registry with the default
// formatter alone.
func (c *Config) ResetFormatters() {
	c.formatters = map[string]formatter.Formatter{
		DefaultFormatterKey: defaultFormatter,
	}
}

// LevelValue returns the parsed severity of the live configuration.
func (c *Config) LevelValue() core.Level {
	return logger.ParseLevel(c.level)
}
