package app

import (
	"time"

	"github.com/google/uuid"
)

// Operation identifies one CLI invocation. Its ID tags every log line.
type Operation struct {
	ID        string
	Name      string
	StartedAt time.Time
	Status    string // "success" or "error"
}

// NewOperation creates an operation with a fresh random ID.
func NewOperation(name string, now time.Time) *Operation {
	return &Operation{
		ID:        uuid.New().String(),
		Name:      name,
		StartedAt: now,
		Status:    "success",
	}
}

// Fail marks the operation as failed.
func (op *Operation) Fail() {
	op.Status = "error"
}

// Elapsed returns the time since the operation started.
func (op *Operation) Elapsed(now time.Time) time.Duration {
	return now.Sub(op.StartedAt)
}
