package formatter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/flowlog/flowlog/core"
)

// Template is a line template compiled from a format string containing
// {field} placeholders, e.g. "{created} {levelname} {name} {msg}".
// Compilation happens once at formatter construction; rendering walks
// the precompiled segments and never re-parses the format string.
//
// Recognized placeholders are the record attribute names: created,
// levelname, name, filename, pathname, module, funcName, lineno, msg,
// process, thread, processName, threadName and log_id. Anything else
// is treated as literal text.
type Template struct {
	segments   []segment
	timeLayout string
}

// segment is either a literal run of text or a single field reference.
type segment struct {
	literal string
	field   string
}

// Compile parses format into a Template. timeLayout controls how the
// created field is rendered (empty for RFC3339).
func Compile(format, timeLayout string) *Template {
	if timeLayout == "" {
		timeLayout = time.RFC3339
	}
	t := &Template{timeLayout: timeLayout}

	for len(format) > 0 {
		open := strings.IndexByte(format, '{')
		if open < 0 {
			t.appendLiteral(format)
			break
		}
		closing := strings.IndexByte(format[open:], '}')
		if closing < 0 {
			t.appendLiteral(format)
			break
		}
		name := format[open+1 : open+closing]
		if !knownField(name) {
			// Literal braces, keep them and move past the '{'.
			t.appendLiteral(format[:open+1])
			format = format[open+1:]
			continue
		}
		t.appendLiteral(format[:open])
		t.segments = append(t.segments, segment{field: name})
		format = format[open+closing+1:]
	}
	return t
}

func (t *Template) appendLiteral(s string) {
	if s == "" {
		return
	}
	// Merge adjacent literals so rendering is one WriteString per run.
	if n := len(t.segments); n > 0 && t.segments[n-1].field == "" {
		t.segments[n-1].literal += s
		return
	}
	t.segments = append(t.segments, segment{literal: s})
}

func knownField(name string) bool {
	switch name {
	case "created", "levelname", "name", "filename", "pathname",
		"module", "funcName", "lineno", "msg", "process", "thread",
		"processName", "threadName", "log_id":
		return true
	}
	return false
}

// render writes the substituted template for r into buf.
func (t *Template) render(buf *bytes.Buffer, r *core.Record) {
	for _, seg := range t.segments {
		if seg.field == "" {
			buf.WriteString(seg.literal)
			continue
		}
		t.appendField(buf, r, seg.field)
	}
}

func (t *Template) appendField(buf *bytes.Buffer, r *core.Record, field string) {
	switch field {
	case "created":
		buf.Write(r.Created.AppendFormat(buf.AvailableBuffer(), t.timeLayout))
	case "levelname":
		buf.WriteString(r.Level.String())
	case "name":
		buf.WriteString(r.Name)
	case "filename":
		buf.WriteString(r.Filename)
	case "pathname":
		buf.WriteString(r.Pathname)
	case "module":
		buf.WriteString(r.Module)
	case "funcName":
		buf.WriteString(r.FuncName)
	case "lineno":
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(r.Lineno), 10))
	case "msg":
		appendMessage(buf, r.Msg)
	case "process":
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(r.Process), 10))
	case "thread":
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), r.Thread, 10))
	case "processName":
		buf.WriteString(r.ProcessName)
	case "threadName":
		buf.WriteString(r.ThreadName)
	case "log_id":
		buf.WriteString(r.LogID)
	}
}

// appendMessage writes the text form of a message. Strings are the
// common case and take the no-allocation path.
func appendMessage(buf *bytes.Buffer, msg any) {
	switch m := msg.(type) {
	case nil:
	case string:
		buf.WriteString(m)
	case fmt.Stringer:
		buf.WriteString(m.String())
	default:
		fmt.Fprintf(buf, "%v", m)
	}
}
