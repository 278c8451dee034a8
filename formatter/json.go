package formatter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/flowlog/flowlog/core"
)

// JSONFormatter renders a record as a compact single-line JSON object
// holding a fixed allow-list of record fields, keys sorted
// lexicographically. Fields outside the allow-list never appear, so
// arbitrary host attributes cannot leak into machine-readable output.
//
// The message is always coerced to its text form and stripped of ANSI
// escapes before serialization, whatever its original type. Together
// with the fact that every other allow-listed value is a string or a
// number, this means serialization cannot fail on an exotic payload:
// a log call never crashes the host over an unserializable message.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format renders the record as sorted-key single-line JSON. Only
// fields actually set on the record (non-zero) are included.
func (f *JSONFormatter) Format(record *core.Record) (string, error) {
	cr := record.Clone()
	cr.Msg = StripANSI(messageText(cr.Msg))

	b, err := json.Marshal(allowListed(cr))
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	return string(b), nil
}

// messageText coerces any message to its text representation.
func messageText(msg any) string {
	switch m := msg.(type) {
	case nil:
		return ""
	case string:
		return m
	case fmt.Stringer:
		return m.String()
	default:
		return fmt.Sprintf("%v", m)
	}
}

// allowListed builds the output mapping from the allow-listed record
// fields that are set. encoding/json emits map keys in sorted order,
// which gives the deterministic key ordering downstream parsers rely
// on.
func allowListed(r *core.Record) map[string]any {
	m := make(map[string]any, 14)
	if !r.Created.IsZero() {
		m["created"] = epochSeconds(r.Created)
	}
	if r.Level.Valid() {
		m["levelname"] = r.Level.String()
	}
	if r.Name != "" {
		m["name"] = r.Name
	}
	if msg, ok := r.Msg.(string); ok && msg != "" {
		m["msg"] = msg
	}
	if r.Filename != "" {
		m["filename"] = r.Filename
	}
	if r.Pathname != "" {
		m["pathname"] = r.Pathname
	}
	if r.Module != "" {
		m["module"] = r.Module
	}
	if r.FuncName != "" {
		m["funcName"] = r.FuncName
	}
	if r.Lineno != 0 {
		m["lineno"] = r.Lineno
	}
	if r.Process != 0 {
		m["process"] = r.Process
	}
	if r.Thread != 0 {
		m["thread"] = r.Thread
	}
	if r.ProcessName != "" {
		m["processName"] = r.ProcessName
	}
	if r.ThreadName != "" {
		m["threadName"] = r.ThreadName
	}
	if r.LogID != "" {
		m["log_id"] = r.LogID
	}
	return m
}

// epochSeconds converts a creation time to fractional seconds since
// the Unix epoch, the numeric timestamp shape of the JSON wire format.
func epochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}
