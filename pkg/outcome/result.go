package outcome

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is either a value of type T or an error.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	trace     Trace
	isSuccess bool
	hasValue  bool
}

// Success returns a successful Result holding v.
// It panics with ErrInvalidArgument if v is a nil pointer or nil interface.
func Success[T any](v T) Result[T] {
	if isNilPayload(v) {
		panic(invalidArgument("Result[%s] cannot succeed with a nil value", typeName[T]()))
	}
	return Result[T]{
		value:     v,
		isSuccess: true,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure returns a failed Result holding err. See Fail for how the origin
// trace is recorded.
func Failure[T any](err error) Result[T] {
	stored, trace := newFailure(err, 1)
	return Result[T]{
		err:       stored,
		trace:     trace,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromError is Failure, for call sites that convert a caught error.
func FromError[T any](err error) Result[T] {
	stored, trace := newFailure(err, 1)
	return Result[T]{
		err:       stored,
		trace:     trace,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Of converts a (value, error) pair into a Result. A non-nil err wins and
// v is discarded. As with From, an err holding a nil pointer counts as nil.
func Of[T any](v T, err error) Result[T] {
	if !IsNil(err) {
		stored, trace := newFailure(err, 1)
		return Result[T]{
			err:       stored,
			trace:     trace,
			createdAt: time.Now().UTC(),
			id:        uuid.New(),
		}
	}
	if isNilPayload(v) {
		panic(invalidArgument("Result[%s] cannot succeed with a nil value", typeName[T]()))
	}
	return Result[T]{
		value:     v,
		isSuccess: true,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

func (r Result[T]) IsEmpty() bool {
	return !r.isSuccess && r.err == nil
}

func (r Result[T]) HasValue() bool {
	return r.hasValue
}

// GetOk returns the stored value.
// It panics with ErrInvalidState if r is not a success.
func (r Result[T]) GetOk() T {
	if !r.isSuccess {
		panic(invalidState("Result[%s] was not successful", typeName[T]()))
	}
	if !r.hasValue {
		panic(invalidState("value for Result[%s] was not set", typeName[T]()))
	}
	return r.value
}

// Get returns the value and the error. The value is the zero value of T
// unless r succeeded.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// GetError returns the stored error.
// It panics with ErrInvalidState if r is not a failure.
func (r Result[T]) GetError() error {
	if r.isSuccess || r.err == nil {
		panic(invalidState("error for Result[%s] not set", typeName[T]()))
	}
	return r.err
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) Message() string {
	if r.err == nil {
		return ""
	}
	return r.err.Error()
}

func (r Result[T]) Trace() Trace {
	return r.trace
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Outcome drops the payload. Id, error and trace are kept.
func (r Result[T]) Outcome() Outcome {
	return Outcome{
		id:        r.id,
		createdAt: r.createdAt,
		err:       r.err,
		trace:     r.trace,
		isSuccess: r.isSuccess,
	}
}

// Check returns r unchanged if it succeeded, and panics like Outcome.Check otherwise.
func (r Result[T]) Check() Result[T] {
	if r.isSuccess {
		return r
	}
	panic(newRaised(r.GetError(), r.trace, 1))
}

func typeName[T any]() string {
	return fmt.Sprintf("%T", (*T)(nil))[1:]
}
