// Package outcome provides a thin success/failure boundary type.
//
// Functions return an Outcome (no payload) or a Result[T] (payload of type T)
// instead of panicking. Callers drive control flow off IsSuccess/Message and
// only cross back into panics when they opt in with Check.
//
// Key operations:
// - Ok/Fail/From: construct an untyped Outcome
// - Success/Failure/Of/FromError: construct a Result[T]
// - GetOk/GetError/Get/Err/Message: read the payload or the error
// - Check: panic with the stored error (as *Raised) on failure, pass through on success
// - Catch/CatchResult: deferred recover that turns a panic back into a failure
//
// Every failure carries a Trace: the stack where the error was wrapped, plus
// one stack per Check it went through, so an error rethrown across several
// layers still names the function it started in.
//
// Check panics with a *Raised, not with the stored error itself. Callers that
// recover on their own should use AsRaised or errors.Is instead of ==.
package outcome
