package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/flowlog/flowlog/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log record into a single string. Formatters
	// never write the string anywhere themselves; routing it to a
	// sink is the host framework's job.
	Format(record *core.Record) (string, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without the intermediate string
// allocation. Hosts check for it at handler-construction time.
type WriterFormatter interface {
	// FormatTo formats a log record and writes it directly to the writer
	FormatTo(record *core.Record, w io.Writer) error
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout used when a template
	// substitutes the created field (empty for RFC3339)
	TimestampFormat string
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
