package util

import "github.com/google/uuid"

// NewID returns a fresh UUIDv4 string used to correlate an invocation's
// log lines and history entry.
func NewID() string { return uuid.NewString() }
