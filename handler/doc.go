// Package handler provides the Handler interface and one constructor per
// built-in output destination.
//
// A handler is constructed fully configured: each constructor takes a
// Config struct carrying the severity threshold and the formatter along
// with variant-specific parameters, and returns a ready-to-attach
// handler. Constructors perform no validation of their own beyond what
// the underlying sink requires; a bad file path, an unreachable syslog
// collector or an unsupported HTTP method surfaces as a construction
// error from the sink, untranslated. After construction only the
// threshold and the formatter can be reassigned.
//
// All handlers process entries synchronously. A mutex serializes the
// write path because one handler may be attached to several loggers;
// there is no queueing, buffering or backpressure.
//
// Built-in handlers:
//
//   - ConsoleHandler writes formatted entries to any io.Writer (default: stdout).
//   - RichConsoleHandler writes colorized human-oriented output, optionally
//     with stack traces for ERROR and CRITICAL entries.
//   - FileHandler appends to a single file, optionally deferring the open
//     until the first write.
//   - SizeRotatedFileHandler rolls the file over at a size threshold,
//     delegating rotation to lumberjack.
//   - TimeRotatedFileHandler rolls the file over on a wall-clock schedule
//     and prunes old backups.
//   - SyslogHandler delivers entries to a syslog collector over UDP or TCP.
//   - HTTPHandler delivers entries to an HTTP collector via GET or POST.
//   - SlogHandler adapts any Handler to log/slog.Handler, allowing the
//     library to serve as a backend for the standard library.
package handler
