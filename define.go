package slco

// framed is satisfied by any capture that embeds [Frame].
type framed interface {
	frame() *Frame
}

// A Segment is one stretch of a coroutine body between suspension
// points, used with [Define]. It runs the capture from its own label
// to the next transition and returns the label to continue at along
// with a [Status]: [Running] enters the returned segment immediately
// within the same invocation, any other Status ends the invocation
// with the returned label recorded as the resume position.
type Segment[C framed] func(c C, p Process) (Label, Status)

// A Func is a reentrant coroutine body assembled by [Define]. The
// conventional use is a one-line Step method delegating to a
// package-level Func:
//
//	var fetcherBody = slco.Define(fetchStart, fetchHeaders, fetchBody)
//
//	func (c *fetcher) Step(p slco.Process) slco.Status {
//		return fetcherBody(c, p)
//	}
type Func[C framed] func(c C, p Process) Status

// Define assembles the reentrant function of a coroutine from its
// labeled segments. Labels index the table: the segment at [Start]
// runs first, and a suspension point's label is the index of the
// segment re-entered when the coroutine resumes there.
//
// The returned function dispatches on the capture's saved resume
// position and runs segments until one reports something other than
// [Running]. Terminal results do not move the resume position.
// A resume position outside the table panics; that means the capture
// was corrupted, or resumed after a terminal result with its label
// left pointing at a segment that no longer exists.
func Define[C framed](segments ...Segment[C]) Func[C] {
	if len(segments) == 0 {
		panic("slco: Define with no segments")
	}
	return func(c C, p Process) Status {
		f := c.frame()
		for {
			l := f.pc
			if l < 0 || int(l) >= len(segments) {
				panic("slco: resume position out of range")
			}
			next, st := segments[l](c, p)
			if st.Terminal() {
				return st
			}
			f.pc = next
			if st != Running {
				return st
			}
		}
	}
}
