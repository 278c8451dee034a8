package formatter

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/flowlog/flowlog/core"
)

// MemorySampler reports the current resident memory of the process in
// bytes, or -1 when the reading is unavailable.
type MemorySampler func() int64

// residentMemory is the default sampler. A sampling hiccup must never
// break logging, so failures collapse to the -1 sentinel instead of
// propagating.
func residentMemory() int64 {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return -1
	}
	mi, err := proc.MemoryInfo()
	if err != nil || mi == nil {
		return -1
	}
	return int64(mi.RSS)
}

// ProfileFormatter renders structured-message records as sorted-key
// JSON enriched with the record's timing/identity attributes and the
// process's resident memory, for profiling pipelines. Records whose
// message is not a map produce no output at all: ordinary log lines
// flowing through a profiled logger are skipped, not errored.
type ProfileFormatter struct {
	// Sampler provides the memory reading. Tests swap it for a
	// deterministic func; zero value means residentMemory.
	Sampler MemorySampler
}

// NewProfileFormatter creates a profile formatter backed by the
// process's real memory statistics.
func NewProfileFormatter() *ProfileFormatter {
	return &ProfileFormatter{Sampler: residentMemory}
}

// Format merges the record's created/module/process/thread attributes
// and the current memory reading into a copy of the message map and
// serializes it. Non-map messages return "", nil.
func (f *ProfileFormatter) Format(record *core.Record) (string, error) {
	cr := record.Clone()
	msg, ok := cr.Msg.(map[string]any)
	if !ok {
		return "", nil
	}

	// Merge into a fresh map: the message map is shared with every
	// other formatter the record is dispatched to.
	merged := make(map[string]any, len(msg)+5)
	for k, v := range msg {
		merged[k] = v
	}
	merged["created"] = epochSeconds(cr.Created)
	merged["module"] = cr.Module
	merged["process"] = cr.Process
	merged["thread"] = cr.Thread
	merged["memory"] = f.sample()

	b, err := json.Marshal(merged)
	if err != nil {
		// Host payloads can put anything in the message map; fall
		// back to text coercion rather than failing the log call.
		for k, v := range merged {
			switch v.(type) {
			case string, int, int64, float64, bool, nil:
			default:
				merged[k] = fmt.Sprintf("%v", v)
			}
		}
		if b, err = json.Marshal(merged); err != nil {
			return "", fmt.Errorf("encode profile record: %w", err)
		}
	}
	return string(b), nil
}

func (f *ProfileFormatter) sample() int64 {
	if f.Sampler == nil {
		return residentMemory()
	}
	return f.Sampler()
}
