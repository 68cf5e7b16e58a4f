package outcome

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Raised is the panic value produced by Check. It unwraps to the error stored
// in the failed outcome and carries the trace accumulated so far.
type Raised struct {
	err   error
	trace Trace
}

func newRaised(err error, trace Trace, skip int) *Raised {
	return &Raised{
		err:   err,
		trace: trace.withRethrow(captureStack(skip + 1)),
	}
}

func (r *Raised) Error() string {
	return r.err.Error()
}

func (r *Raised) Unwrap() error {
	return r.err
}

func (r *Raised) Trace() Trace {
	return r.trace
}

// Format prints the message for %s and %v, and the message followed by the
// full trace for %+v.
func (r *Raised) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, r.Error())
			_, _ = io.WriteString(s, "\n")
			r.trace.writeTo(s)
			return
		}
		_, _ = io.WriteString(s, r.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", r.Error())
	default:
		_, _ = io.WriteString(s, r.Error())
	}
}

// AsRaised reports whether v, typically a value returned by recover, is or
// wraps a *Raised.
func AsRaised(v any) (*Raised, bool) {
	err, ok := v.(error)
	if !ok {
		return nil, false
	}
	var raised *Raised
	if errors.As(err, &raised) {
		return raised, true
	}
	return nil, false
}

// Check returns o unchanged if it succeeded and panics with a *Raised otherwise.
func Check[O Failable](o O) O {
	if o.IsSuccess() {
		return o
	}
	panic(newRaised(o.GetError(), o.Trace(), 1))
}

// Catch turns a panic into a failed Outcome. It must be deferred directly:
//
//	func copy() (out outcome.Outcome) {
//		defer outcome.Catch(&out)
//		...
//	}
//
// Contract violations (ErrInvalidArgument, ErrInvalidState) are not
// converted and keep panicking.
func Catch(out *Outcome) {
	r := recover()
	if r == nil {
		return
	}
	err, trace := recovered(r, out == nil)
	*out = Outcome{
		err:       err,
		trace:     trace,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// CatchResult is Catch for functions returning a Result[T].
func CatchResult[T any](out *Result[T]) {
	r := recover()
	if r == nil {
		return
	}
	err, trace := recovered(r, out == nil)
	*out = Result[T]{
		err:       err,
		trace:     trace,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// recovered maps a recovered panic value to the error and trace of a
// failure, or panics again with r if it must not be converted.
func recovered(r any, noTarget bool) (error, Trace) {
	err, ok := r.(error)
	if !ok {
		err = &PanicError{Value: r}
	}
	// a *Raised carries a failure that was already data; only misuse panics directly
	_, raised := r.(*Raised)
	if noTarget || (!raised && IsContractViolation(err)) {
		panic(r)
	}
	// The panicking frames are still on the stack while deferred calls run.
	return newFailure(err, 2)
}
