// Package slco implements single-shot stackless coroutines: resumable
// units of computation that keep their state across suspensions without
// a dedicated execution stack per coroutine.
//
// A coroutine is described by a capture struct embedding a [Frame] and
// a reentrant body, the Step method, which implements [Stepper].
// The Frame records the resume position; the remaining fields of the
// capture hold whatever must survive a suspension.
// There is no other liveness: no saved stack, no saved registers, and
// the package never allocates on behalf of a coroutine.
// The capture is owned by whoever declared it, on a stack frame,
// embedded in another struct, or statically.
//
// # Invoking And Resuming
//
// [Invoke] runs a coroutine once, from its saved resume position to
// the next suspension point, completion or error, and returns a
// [Status]. Starting an unstarted capture and resuming a suspended one
// are the same operation; the difference lives entirely in the capture.
// The zero value of a capture is an unstarted coroutine; a struct
// literal assigns its initial field values.
//
// Invoking a capture that already reported [Complete] or [Error] is
// undefined behavior. Callers track termination themselves, typically
// by caching the last Status. [Frame.Reset] re-arms a capture for
// another run once a terminal Status has been observed.
//
// # Suspension
//
// Suspension points are statically declared: each is a [Label] unique
// within one body, and the body dispatches on [Frame.PC] to the
// matching point on re-entry. A body suspends by returning the result
// of [Frame.Yield], [Frame.Wait] or [Frame.Suspend], each of which
// records the label where execution must continue.
//
// To run a nested coroutine, a body calls [Frame.Await]. Await records
// the resume position immediately before the nested call, so that
// re-invoking the outermost coroutine re-descends through every
// enclosing await to the exact point of suspension, with no
// bookkeeping by the caller beyond holding one [Process] handle.
// A nested coroutine's Error, Scheduled and Waiting results propagate
// up through every enclosing await unchanged; its intermediate Yielded
// results are drained within the same invocation and are invisible to
// the awaiter. To observe intermediate yields, invoke the coroutine
// directly instead of awaiting it.
//
// [Frame.AwaitFunc] has the same contract for leaf operations that are
// not coroutines, such as a raw polling check. [Latch], [WaitGroup]
// and [Semaphore] provide such leaves for common rendezvous patterns.
//
// # Scheduling Is The Caller's Problem
//
// This package contains no scheduler and no policy. A [Scheduled]
// result means some external function took the process handle and will
// resume it later; a [Waiting] result asks whoever would have resumed
// the coroutine to retry promptly instead of parking it. The two
// propagate identically; the difference is advisory.
//
// Execution is strictly single-threaded and synchronous within one
// invocation. A capture must not be invoked concurrently from two call
// sites; distinct captures are fully independent and may be driven
// from different goroutines without coordination. There is no
// cancellation primitive: abandoning a suspended coroutine means the
// owner stops invoking it, and the capture's storage may be reused or
// released at the owner's discretion. No cleanup runs automatically.
//
// # Writing Bodies
//
// A body is a state machine over its labels. The hand-written form is
// a switch on [Frame.PC] inside a loop, using [Frame.Goto] for
// internal transitions such as loop heads:
//
//	type generator struct {
//		slco.Frame
//		V uint8
//	}
//
//	const generatorLoop slco.Label = 1
//
//	func (g *generator) Step(p slco.Process) slco.Status {
//		for {
//			switch g.PC() {
//			case slco.Start:
//				g.V = 0
//				g.Goto(generatorLoop)
//			case generatorLoop:
//				if g.V == math.MaxUint8 {
//					return slco.Complete
//				}
//				g.V++
//				return g.Yield(generatorLoop)
//			}
//		}
//	}
//
// [Define] assembles the same kind of reentrant function from a table
// of labeled segments, dispatching on the saved label by index.
//
// Because re-entry jumps to the middle of the body, suspension must be
// lexically restricted to points every enclosing construct tolerates:
// a suspension inside a Go for loop is expressed as a loop-head label,
// never a jump into the block, and nothing with scope-exit side
// effects may straddle a suspension point.
package slco
