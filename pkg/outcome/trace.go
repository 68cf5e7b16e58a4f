package outcome

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

// Frame is a single call site.
type Frame struct {
	Function string // fully-qualified function name
	File     string
	Line     int
}

// Stack is a slice of frames, most recent call first.
type Stack []Frame

// SegmentKind tells where a trace segment was recorded.
type SegmentKind uint8

const (
	// SegmentOrigin is recorded when an error is first wrapped into a failure.
	SegmentOrigin SegmentKind = iota
	// SegmentRethrow is recorded by every Check that raises the error.
	SegmentRethrow
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentOrigin:
		return "origin"
	case SegmentRethrow:
		return "rethrown at"
	default:
		return "unknown"
	}
}

// Segment is one captured stack of a Trace.
type Segment struct {
	Kind  SegmentKind
	Stack Stack
}

// Trace is the diagnostic record of a failure: the origin stack followed by
// one stack per rethrow. A Trace is never modified once built; withRethrow
// returns a new value.
type Trace struct {
	segments []Segment
}

const maxStackDepth = 32

// captureStack returns the stack starting at the caller of captureStack,
// skipping 'skip' more frames.
func captureStack(skip int) Stack {
	pc := make([]uintptr, maxStackDepth)
	// +2: runtime.Callers and captureStack itself
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			Function: fr.Function,
			File:     fr.File,
			Line:     fr.Line,
		})
		if !more {
			break
		}
	}
	return out
}

func (s Stack) clone() Stack {
	if s == nil {
		return nil
	}
	out := make(Stack, len(s))
	copy(out, s)
	return out
}

func newTrace(origin Stack) Trace {
	return Trace{segments: []Segment{{Kind: SegmentOrigin, Stack: origin}}}
}

func (t Trace) withRethrow(stack Stack) Trace {
	segments := make([]Segment, 0, len(t.segments)+1)
	segments = append(segments, t.segments...)
	segments = append(segments, Segment{Kind: SegmentRethrow, Stack: stack})
	return Trace{segments: segments}
}

// IsEmpty reports whether no stack was recorded (success outcomes).
func (t Trace) IsEmpty() bool {
	return len(t.segments) == 0
}

// Segments returns a copy of the recorded segments, origin first.
func (t Trace) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	for i, s := range t.segments {
		out[i] = Segment{Kind: s.Kind, Stack: s.Stack.clone()}
	}
	return out
}

// Origin returns the stack recorded where the error was first wrapped.
func (t Trace) Origin() Stack {
	for _, s := range t.segments {
		if s.Kind == SegmentOrigin {
			return s.Stack.clone()
		}
	}
	return nil
}

// Rethrows returns how many times the error was raised by Check.
func (t Trace) Rethrows() int {
	n := 0
	for _, s := range t.segments {
		if s.Kind == SegmentRethrow {
			n++
		}
	}
	return n
}

// Frames flattens all segments into one stack, origin first.
func (t Trace) Frames() Stack {
	var out Stack
	for _, s := range t.segments {
		out = append(out, s.Stack...)
	}
	return out
}

// Contains reports whether any frame's function name ends with fn.
func (t Trace) Contains(fn string) bool {
	for _, s := range t.segments {
		for _, fr := range s.Stack {
			if strings.HasSuffix(fr.Function, fn) {
				return true
			}
		}
	}
	return false
}

func (t Trace) String() string {
	var sb strings.Builder
	t.writeTo(&sb)
	return sb.String()
}

func (t Trace) writeTo(w io.Writer) {
	for i, s := range t.segments {
		if i > 0 {
			_, _ = io.WriteString(w, "\n")
		}
		_, _ = fmt.Fprintf(w, "%s:", s.Kind)
		for _, fr := range s.Stack {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}
