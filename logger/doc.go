// Package logger provides named Logger instances and the Registry that
// owns them.
//
// A Logger carries a severity threshold and a set of attached handlers.
// Entries that pass the logger's threshold are offered to every attached
// handler; each handler then applies its own threshold. Loggers created
// through a Registry forward entries to the registry's root logger
// unless propagation is switched off.
//
// The Registry replaces the implicit process-global logger map found in
// most logging runtimes with an explicit object: code that wants shared
// loggers passes a Registry around (or uses DefaultRegistry), and tests
// construct their own to stay isolated.
//
// The package also initializes a default Logger writing text to stdout,
// reachable through the package-level functions Info, Error, Debugf and
// friends, so simple programs can log without any setup:
//
//	logger.Info("ready", logger.Int("port", 8080))
//
// The config package builds on these pieces: it owns a Registry entry,
// keeps named handler and formatter registries, and synchronizes the
// live logger's attached handlers from them.
package logger
