package outcome

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Outcome reports whether an operation succeeded. It carries no payload on
// success and an error on failure. Outcomes are immutable values.
type Outcome struct {
	id        uuid.UUID
	createdAt time.Time
	err       error
	trace     Trace
	isSuccess bool
}

// Ok returns a successful Outcome.
func Ok() Outcome {
	return Outcome{
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail returns a failed Outcome holding err. The stack of the caller is
// recorded as the origin of the failure, unless err was raised by Check, in
// which case its original error and trace are kept.
//
// Fail panics with ErrInvalidArgument if err is nil.
func Fail(err error) Outcome {
	stored, trace := newFailure(err, 1)
	return Outcome{
		err:       stored,
		trace:     trace,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// From converts the conventional Go error return into an Outcome: nil gives
// Ok, anything else gives Fail(err). An error interface holding a nil pointer
// counts as nil and gives Ok, unlike a plain err != nil check.
func From(err error) Outcome {
	if IsNil(err) {
		return Ok()
	}
	stored, trace := newFailure(err, 1)
	return Outcome{
		err:       stored,
		trace:     trace,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// newFailure validates err and resolves the error and trace a failure stores.
// The origin stack starts at the caller of newFailure's caller when skip is 1.
func newFailure(err error, skip int) (error, Trace) {
	if IsNil(err) {
		panic(invalidArgument("a failure requires a non-nil error"))
	}

	var raised *Raised
	if errors.As(err, &raised) {
		if err == error(raised) {
			return raised.err, raised.trace
		}
		// wrapped by the caller: keep the wrapper, inherit the trace
		return err, raised.trace
	}

	return err, newTrace(captureStack(skip + 1))
}

func (o Outcome) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome) IsFailure() bool {
	return !o.isSuccess && o.err != nil
}

// IsEmpty reports whether o is the zero value, built by neither Ok nor Fail.
func (o Outcome) IsEmpty() bool {
	return !o.isSuccess && o.err == nil
}

// Message returns the error message of a failure, or "" otherwise.
func (o Outcome) Message() string {
	if o.err == nil {
		return ""
	}
	return o.err.Error()
}

// GetError returns the stored error.
// It panics with ErrInvalidState if o is not a failure.
func (o Outcome) GetError() error {
	if o.isSuccess || o.err == nil {
		panic(invalidState("outcome %s holds no error", o.id))
	}
	return o.err
}

// Err returns the stored error, or nil.
func (o Outcome) Err() error {
	return o.err
}

func (o Outcome) Trace() Trace {
	return o.trace
}

func (o Outcome) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome) Id() uuid.UUID {
	return o.id
}

// Check returns o unchanged if it succeeded. Otherwise it panics with a
// *Raised carrying the stored error and the trace extended by the caller's
// stack, so that the panic can be recovered by Catch in an outer layer.
func (o Outcome) Check() Outcome {
	if o.isSuccess {
		return o
	}
	panic(newRaised(o.GetError(), o.trace, 1))
}
