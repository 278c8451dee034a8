package formatter

import (
	"bytes"
	"testing"
	"time"

	"github.com/flowlog/flowlog/core"
)

func renderString(t *Template, r *core.Record) string {
	var buf bytes.Buffer
	t.render(&buf, r)
	return buf.String()
}

func TestTemplate_Substitution(t *testing.T) {
	tmpl := Compile("{levelname} {name}@{module}:{lineno} {msg}", "")

	r := &core.Record{
		Level:  core.WarningLevel,
		Name:   "gateway",
		Module: "server",
		Lineno: 42,
		Msg:    "slow request",
	}

	got := renderString(tmpl, r)
	want := "WARNING gateway@server:42 slow request"
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestTemplate_TimestampFormat(t *testing.T) {
	tmpl := Compile("{created}", time.RFC1123)

	r := &core.Record{Created: time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)}

	got := renderString(tmpl, r)
	want := r.Created.Format(time.RFC1123)
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestTemplate_UnknownPlaceholderIsLiteral(t *testing.T) {
	tmpl := Compile("{nope} {msg} {unclosed", "")

	r := &core.Record{Msg: "hi"}

	got := renderString(tmpl, r)
	want := "{nope} hi {unclosed"
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestTemplate_NumericFields(t *testing.T) {
	tmpl := Compile("pid={process} tid={thread}", "")

	r := &core.Record{Process: 1234, Thread: 140352}

	got := renderString(tmpl, r)
	want := "pid=1234 tid=140352"
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestTemplate_StructuredMessage(t *testing.T) {
	tmpl := Compile("{msg}", "")

	r := &core.Record{Msg: map[string]any{"event": "x"}}

	got := renderString(tmpl, r)
	if got != "map[event:x]" {
		t.Errorf("render = %q, want the map's text form", got)
	}
}
