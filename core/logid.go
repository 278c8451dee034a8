package core

import "github.com/google/uuid"

// NewLogID returns a fresh correlation identifier for Record.LogID.
// Hosts that fan a request out across processes stamp every record in
// the request with the same id so downstream consumers can join them.
func NewLogID() string {
	return uuid.NewString()
}
