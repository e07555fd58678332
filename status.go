package slco

import "strconv"

// Status is the outcome of invoking a coroutine.
//
// Complete and Error are terminal: once a capture reports either,
// invoking it again is undefined behavior. The others leave the
// coroutine suspended and resumable.
type Status uint8

const (
	// Complete reports that the body ran to its end.
	Complete Status = iota

	// Error reports that the body terminated abnormally. The cause, if
	// the body recorded one with [Frame.Throw], is available from the
	// capture's [Frame.Err]; an enclosing [Frame.Await] lifts it into
	// the awaiting frame on the way up.
	Error

	// Scheduled reports that the coroutine suspended and expects the
	// caller, not the coroutine itself, to decide when and whether to
	// resume it; typically its [Process] handle has been parked with
	// some external function that will resume it on an event.
	Scheduled

	// Waiting reports that the coroutine suspended and expects prompt,
	// unconditional re-invocation by whatever would have resumed it.
	// Waiting propagates through enclosing awaits exactly like
	// Scheduled; the retry-promptly policy is advisory, since this
	// package ships no scheduler to enforce it.
	Waiting

	// Yielded reports that the coroutine suspended voluntarily to hand
	// control back, typically to publish an intermediate value through
	// its capture fields. Resuming continues immediately after the
	// yield point.
	Yielded

	// Running is only meaningful inside a segment table built with
	// [Define]: a segment returns it to enter the segment at the
	// returned label immediately. It is never returned by an
	// invocation.
	Running
)

// Terminal reports whether s ended the coroutine. Invoking a capture
// after a terminal Status is undefined behavior.
func (s Status) Terminal() bool {
	return s == Complete || s == Error
}

// Suspended reports whether s left the coroutine suspended and
// resumable.
func (s Status) Suspended() bool {
	return s == Yielded || s == Scheduled || s == Waiting
}

func (s Status) String() string {
	switch s {
	case Complete:
		return "complete"
	case Error:
		return "error"
	case Scheduled:
		return "scheduled"
	case Waiting:
		return "waiting"
	case Yielded:
		return "yielded"
	case Running:
		return "running"
	default:
		return "slco.Status(" + strconv.Itoa(int(s)) + ")"
	}
}
