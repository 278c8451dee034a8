package benchmark

import (
	"time"

	"github.com/flowlog/flowlog/core"
)

// sampleRecord returns the record every formatter benchmark renders,
// shaped like a typical request log line.
func sampleRecord() *core.Record {
	return &core.Record{
		Created:  time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC),
		Level:    core.InfoLevel,
		Name:     "gateway",
		Msg:      "request handled",
		Filename: "server.go",
		Module:   "server",
		FuncName: "main.handle",
		Lineno:   42,
		Process:  4321,
	}
}
