package slco

// A Label identifies a point in a coroutine body where execution can
// resume. Labels are declared statically, one per suspension point,
// and must be unique within one body; no two suspension points may
// share a label, or re-entry would be ambiguous.
type Label int32

// Start is the resume position of a capture that has not run yet.
const Start Label = 0

// A Frame holds the resume position of a coroutine, and the failure
// cause if the body threw one. Embed it as the first member of a
// capture struct:
//
//	type fetcher struct {
//		slco.Frame
//		url  string
//		body []byte
//	}
//
// The zero Frame is positioned at [Start]. The Frame is mutated in
// place by every invocation and carries no identity of its own; the
// package never allocates or frees it.
type Frame struct {
	pc  Label
	err error
}

func (f *Frame) frame() *Frame { return f }

// PC reports the saved resume position. Bodies dispatch on it to find
// the point where execution must continue.
func (f *Frame) PC() Label {
	return f.pc
}

// Goto moves the resume position to l without suspending. Bodies use
// it for internal transitions, such as entering a loop-head label.
func (f *Frame) Goto(l Label) {
	f.pc = l
}

// Reset re-arms the capture for another run: the resume position moves
// back to [Start] and any recorded failure cause is cleared. Reset is
// only safe before the first invocation or after a terminal [Status]
// has been observed. It does not touch the capture's other fields;
// assigning a fresh struct literal resets everything at once.
func (f *Frame) Reset() {
	f.pc = Start
	f.err = nil
}

// Err reports the failure cause recorded by [Frame.Throw], or by an
// await that propagated an [Error] from a nested coroutine. It is nil
// unless the last invocation reported Error.
func (f *Frame) Err() error {
	return f.err
}

// Yield records l as the resume position and reports [Yielded].
// Resuming the coroutine re-enters the body at l.
func (f *Frame) Yield(l Label) Status {
	f.pc = l
	return Yielded
}

// Wait records l as the resume position and reports [Waiting], asking
// whatever would have resumed the coroutine to retry promptly. This is
// rarely what you want; see [Waiting].
func (f *Frame) Wait(l Label) Status {
	f.pc = l
	return Waiting
}

// Suspend records l as the resume position and reports [Scheduled].
// The body is expected to have handed its [Process] handle to some
// external function beforehand; nothing resumes the coroutine
// otherwise.
func (f *Frame) Suspend(l Label) Status {
	f.pc = l
	return Scheduled
}

// Throw records err as the failure cause and reports [Error]. Error is
// terminal; invoking the capture again is undefined behavior.
func (f *Frame) Throw(err error) Status {
	f.err = err
	return Error
}

// Await runs the nested coroutine s from inside a body, recording l as
// the resume position first, so that the next invocation re-enters
// immediately before this await.
//
// Await runs s to its first non-yield result within this invocation:
// intermediate [Yielded] results of s are drained and invisible to the
// awaiter. [Error], [Scheduled] and [Waiting] must be returned up by
// the body without evaluating further statements; the body advances
// past the await only on [Complete]:
//
//	case fetchBody:
//		if st := c.Await(fetchBody, p, &c.conn); st != slco.Complete {
//			return st
//		}
//
// The nested coroutine receives p, the handle of the outermost
// coroutine, so a leaf that parks the handle parks the whole chain;
// resuming it re-descends through every await to the suspension point.
// On Error, the nested capture's failure cause is lifted into f.
func (f *Frame) Await(l Label, p Process, s Stepper) Status {
	f.pc = l
	st := s.Step(p)
	for st == Yielded {
		st = s.Step(p)
	}
	if st == Error {
		if c, ok := s.(interface{ Err() error }); ok {
			f.err = c.Err()
		}
	}
	return st
}

// AwaitFunc is [Frame.Await] for a leaf operation that is not a
// coroutine: fn is any function with the same result contract, such as
// a polling check or one of the parking leaves ([Latch.Wait],
// [WaitGroup.Wait]). fn receives the outermost process handle and its
// result classifies exactly as a nested coroutine's would. Unlike
// Await there is no nested capture to lift a failure cause from; on
// [Error] the body records its own cause with [Frame.Throw] if its
// caller needs one.
func (f *Frame) AwaitFunc(l Label, p Process, fn func(Process) Status) Status {
	f.pc = l
	st := fn(p)
	for st == Yielded {
		st = fn(p)
	}
	return st
}
