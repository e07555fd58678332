package slco

import "slices"

// A Stepper is a coroutine: a capture bound to its reentrant body.
// One call of Step runs the body from the saved resume position to the
// next suspension point, completion or error.
//
// Step receives the [Process] handle of the outermost coroutine in the
// current invocation and must pass it through unchanged to any nested
// await, so that parking the handle parks the whole chain.
type Stepper interface {
	Step(p Process) Status
}

// A Process is a transient handle for one runnable coroutine: the pair
// of a reentrant body and the capture it runs on. It is constructed
// fresh for every invocation and holds no state of its own; an owner
// resumes a coroutine either by reconstructing the handle from the
// capture or by holding on to one previously handed out.
//
// A Process may escape to external code, which is the collaboration
// point with any surrounding scheduler: a leaf that reports
// [Scheduled] typically parked the handle somewhere that will call
// [Process.Resume] later.
type Process struct {
	s Stepper
}

// NewProcess constructs a process handle for s.
func NewProcess(s Stepper) Process {
	return Process{s: s}
}

// Resume invokes the coroutine once and reports its [Status]. Resuming
// a zero Process panics.
func (p Process) Resume() Status {
	if p.s == nil {
		panic("slco: resuming an invalid process")
	}
	return p.s.Step(p)
}

// Invoke starts or resumes the coroutine whose capture is s: it
// constructs a fresh process handle and runs the body once, from the
// saved resume position to the next suspension point, completion or
// error. The two cases are the same operation, since all state lives
// in the capture.
func Invoke(s Stepper) Status {
	return NewProcess(s).Resume()
}

// park appends p to waiters unless it is already parked. A caller may
// legally re-invoke a [Scheduled] coroutine before the event fires;
// the re-entered leaf parks the same handle again, and queueing it
// twice would resume the capture a second time after it completed.
func park(waiters []Process, p Process) []Process {
	if slices.Contains(waiters, p) {
		return waiters
	}
	return append(waiters, p)
}

// resumeRetry resumes p, re-invoking promptly for as long as it
// reports [Waiting]. The parking leaves use it when releasing parked
// processes; the policy is the advisory one documented on [Waiting].
func resumeRetry(p Process) Status {
	st := p.Resume()
	for st == Waiting {
		st = p.Resume()
	}
	return st
}
