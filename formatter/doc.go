// Package formatter defines how log entries are serialized into bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. Handlers
// check for WriterFormatter at construction time and prefer it when
// available, eliminating the intermediate byte slice allocation on
// the write path.
//
// Both built-in formatters (TextFormatter and JSONFormatter) implement
// both interfaces. They format into buffers from valyala/bytebufferpool
// and rely on Go's Append-style functions (time.AppendFormat,
// strconv.AppendInt) to avoid per-call allocations.
//
// The Config flags IncludeLogger and IncludeCaller control whether the
// owning logger's name and the call site are rendered; the default
// formatter installed by the config package enables both.
package formatter
