package formatter

import (
	"regexp"

	"github.com/fatih/color"

	"github.com/flowlog/flowlog/core"
)

// csiPattern matches ANSI CSI escape sequences: ESC '[' followed by
// parameter bytes and a final byte in '@'..'~'.
var csiPattern = regexp.MustCompile("\x1b\\[.*?[@-~]")

// StripANSI removes all CSI escape sequences from s. Stripping is
// idempotent: already-clean text comes back unchanged.
func StripANSI(s string) string {
	return csiPattern.ReplaceAllString(s, "")
}

// levelStyles maps each severity level to its display style. A nil
// entry means the level renders unstyled; INFO is deliberately plain.
// The table is built once and never written to afterwards, so lookups
// are safe from any goroutine.
var levelStyles = map[core.Level]*color.Color{
	core.DebugLevel:    newStyle(color.FgBlack, color.Bold), // renders grey on most terminals
	core.InfoLevel:     nil,
	core.SuccessLevel:  newStyle(color.FgGreen),
	core.WarningLevel:  newStyle(color.FgYellow),
	core.ErrorLevel:    newStyle(color.FgRed),
	core.CriticalLevel: newStyle(color.FgRed, color.Bold),
}

// newStyle builds a style with color output forced on. Formatter
// output must not depend on whether the process happens to be attached
// to a terminal; the sink chooses a formatter, the formatter does not
// sniff the sink.
func newStyle(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// StyleFor returns the display style for a level, or nil when the
// level renders unstyled. Levels outside the six-entry table fall back
// to nil rather than failing, so custom levels flow through untouched.
func StyleFor(level core.Level) *color.Color {
	return levelStyles[level]
}
