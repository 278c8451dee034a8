package formatter

import (
	"bytes"
	"io"

	"github.com/flowlog/flowlog/core"
)

// MaxPlainMsgLen is the hard cap PlainFormatter applies to string
// messages after escape stripping.
const MaxPlainMsgLen = 512

// PlainFormatter renders a record as text safe for non-terminal sinks
// such as files and pipes: ANSI escapes are stripped out of string
// messages and the message is capped at MaxPlainMsgLen characters.
type PlainFormatter struct {
	template *Template
}

// NewPlainFormatter compiles format into a plain-text formatter.
func NewPlainFormatter(format string, cfg Config) *PlainFormatter {
	return &PlainFormatter{template: Compile(format, cfg.TimestampFormat)}
}

// Format renders the record with a sanitized message. Only string
// messages are touched; structured messages pass through as-is. The
// original record is never modified.
func (f *PlainFormatter) Format(record *core.Record) (string, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(record, buf)
	return buf.String(), nil
}

// FormatTo renders the record and writes it directly to the writer
func (f *PlainFormatter) FormatTo(record *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(record, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

func (f *PlainFormatter) formatToBuffer(record *core.Record, buf *bytes.Buffer) {
	cr := record.Clone()
	if msg, ok := cr.Msg.(string); ok {
		cr.Msg = truncate(StripANSI(msg), MaxPlainMsgLen)
	}
	f.template.render(buf, cr)
}

// truncate caps s at n runes. Cutting on a rune boundary keeps the
// tail valid UTF-8.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
