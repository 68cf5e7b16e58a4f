package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Failable is implemented by Outcome and Result[T].
type Failable interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// Message returns the error message, or "" on success
	Message() string
	// GetError returns the error and panics on success
	GetError() error
	// Err returns the error, or nil on success
	Err() error
	// Trace returns the recorded stacks of a failure
	Trace() Trace
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
	Id() uuid.UUID
}

// ValueProvider extends Failable with access to the payload.
type ValueProvider[T any] interface {
	Failable
	// GetOk returns the value and panics on failure
	GetOk() T
	// Get returns the value and the error
	Get() (T, error)
}

var (
	_ Failable              = Outcome{}
	_ ValueProvider[string] = Result[string]{}
)
