// Package core defines the record model shared by all formatters.
//
// It provides the Level type for the six-step severity scale
// (DEBUG, INFO, SUCCESS, WARNING, ERROR, CRITICAL), the Record type
// that represents a single log event together with its source and
// process metadata, and NewLogID for correlation identifiers.
//
// Records are owned by the host logging framework: this package only
// fixes their shape. The one invariant formatters depend on is that a
// Record is never mutated after creation; Record.Clone exists so that
// a formatter can override fields (typically Msg) on a private copy
// while the original continues to be dispatched elsewhere.
package core
