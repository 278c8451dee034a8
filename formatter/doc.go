// Package formatter turns log records into strings.
//
// It exposes the Formatter interface, a pure synchronous transform
// from *core.Record to string, plus the optional WriterFormatter
// interface for hosts that want the rendered line written straight to
// an io.Writer without the intermediate string.
//
// Four formatters cover the common sinks. ColorFormatter wraps a line
// template in per-level ANSI styling for terminals. PlainFormatter
// strips escape sequences and caps the message length for files and
// pipes. JSONFormatter emits a sorted-key JSON object restricted to a
// fixed allow-list of record fields. ProfileFormatter emits JSON for
// structured (map) messages enriched with the process's resident
// memory, and deliberately emits nothing for plain messages.
//
// Every formatter clones the record before touching it and keeps all
// of its own state immutable after construction, so a single instance
// may be shared across goroutines without locking. The text formatters
// render through templates compiled once in the constructor and use a
// pooled bytes.Buffer; buffers larger than 64 KiB are not returned to
// the pool to prevent a single huge log line from permanently
// inflating memory usage.
package formatter
