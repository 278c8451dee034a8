package core

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Record represents a single log event with all its metadata.
//
// Records are created by the host logging framework, one per emitted
// event, and passed by reference into formatters. The same Record may
// be handed to several formatters, so formatters must never modify it
// in place; Clone gives them a private copy to work on.
type Record struct {
	// Created is the event creation time.
	Created time.Time
	// Level is the severity of the event.
	Level Level
	// Name is the name of the logger that emitted the event.
	Name string
	// Msg is the raw message: a string for ordinary log lines, or a
	// map[string]any for structured events.
	Msg any

	// Pathname is the full path of the source file of the log call.
	Pathname string
	// Filename is the base name of Pathname.
	Filename string
	// Module is Filename without its extension.
	Module string
	// FuncName is the function containing the log call.
	FuncName string
	// Lineno is the source line of the log call.
	Lineno int

	// Process is the id of the emitting process.
	Process int
	// Thread is the id of the emitting thread of execution.
	Thread int64
	// ProcessName and ThreadName are optional display names.
	ProcessName string
	ThreadName  string

	// LogID is an optional correlation identifier tying related
	// records together across processes.
	LogID string
}

// New creates a Record for the given logger name, level and message,
// stamped with the current time and process id. Caller information
// (pathname, filename, module, function, line) is captured from the
// frame skip levels above New; hosts that construct records from
// their own dispatch layer pass their stack depth.
func New(name string, level Level, msg any, skip int) *Record {
	r := &Record{
		Created: time.Now(),
		Level:   level,
		Name:    name,
		Msg:     msg,
		Process: os.Getpid(),
	}
	if pc, file, line, ok := runtime.Caller(skip + 1); ok {
		r.Pathname = file
		r.Filename = filepath.Base(file)
		r.Module = strings.TrimSuffix(r.Filename, filepath.Ext(r.Filename))
		r.Lineno = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			r.FuncName = fn.Name()
		}
	}
	return r
}

// Clone returns a shallow copy of the record. Formatters clone before
// touching any field so that the original, which may still be routed
// to other formatters, is never mutated.
func (r *Record) Clone() *Record {
	cr := *r
	return &cr
}
