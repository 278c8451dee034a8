package formatter

import (
	"io"

	"github.com/flowlog/flowlog/core"
)

// ColorFormatter renders a record as a single line of text with ANSI
// styling chosen by severity. It is meant for terminal sinks; pair
// non-terminal sinks with PlainFormatter instead.
type ColorFormatter struct {
	// templates holds one precompiled template per level, with the
	// level's ANSI codes wrapped around the whole template text. The
	// codes therefore bracket the entire rendered line, substituted
	// values included.
	templates map[core.Level]*Template
	// plain is the unstyled fallback for levels outside the table.
	plain *Template
}

// NewColorFormatter compiles format once per severity level, wrapping
// the template text in that level's style before compilation.
func NewColorFormatter(format string, cfg Config) *ColorFormatter {
	f := &ColorFormatter{
		templates: make(map[core.Level]*Template, len(levelStyles)),
		plain:     Compile(format, cfg.TimestampFormat),
	}
	for level, style := range levelStyles {
		if style == nil {
			f.templates[level] = f.plain
			continue
		}
		f.templates[level] = Compile(style.Sprint(format), cfg.TimestampFormat)
	}
	return f
}

// Format renders the record through the template precompiled for its
// level. Unknown levels render through the unstyled template.
func (f *ColorFormatter) Format(record *core.Record) (string, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.template(record.Level).render(buf, record)
	return buf.String(), nil
}

// FormatTo renders the record and writes it directly to the writer
func (f *ColorFormatter) FormatTo(record *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.template(record.Level).render(buf, record)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

func (f *ColorFormatter) template(level core.Level) *Template {
	if t, ok := f.templates[level]; ok {
		return t
	}
	return f.plain
}
