package slco_test

import (
	"testing"

	"github.com/raintherrien/slco"
)

// counter is the generator expressed as a segment table.
type counter struct {
	slco.Frame
	Limit int
	V     int
}

const counterLoop slco.Label = 1

var counterBody = slco.Define[*counter](
	func(c *counter, p slco.Process) (slco.Label, slco.Status) {
		c.V = 0
		return counterLoop, slco.Running
	},
	func(c *counter, p slco.Process) (slco.Label, slco.Status) {
		if c.V == c.Limit {
			return counterLoop, slco.Complete
		}
		c.V++
		return counterLoop, slco.Yielded
	},
)

func (c *counter) Step(p slco.Process) slco.Status {
	return counterBody(c, p)
}

func TestDefine(t *testing.T) {
	c := counter{Limit: 3}

	want := []slco.Status{slco.Yielded, slco.Yielded, slco.Yielded, slco.Complete}
	for i, w := range want {
		if st := slco.Invoke(&c); st != w {
			t.Fatalf("invocation %d returned %v, want %v", i+1, st, w)
		}
	}
	if c.V != 3 {
		t.Errorf("final value = %d, want 3", c.V)
	}
}

// pair awaits a nested counter from inside a segment, then yields a
// summary value of its own before completing.
type pair struct {
	slco.Frame
	inner counter
	Total int
}

const (
	pairAwait slco.Label = iota + 1
	pairDone
)

var pairBody = slco.Define[*pair](
	func(c *pair, p slco.Process) (slco.Label, slco.Status) {
		return pairAwait, slco.Running
	},
	func(c *pair, p slco.Process) (slco.Label, slco.Status) {
		if st := c.Await(pairAwait, p, &c.inner); st != slco.Complete {
			return pairAwait, st
		}
		c.Total = c.inner.V
		return pairDone, slco.Yielded
	},
	func(c *pair, p slco.Process) (slco.Label, slco.Status) {
		return pairDone, slco.Complete
	},
)

func (c *pair) Step(p slco.Process) slco.Status {
	return pairBody(c, p)
}

func TestDefineAwait(t *testing.T) {
	c := pair{inner: counter{Limit: 5}}

	if st := slco.Invoke(&c); st != slco.Yielded {
		t.Fatalf("first invocation returned %v, want yielded", st)
	}
	if c.Total != 5 {
		t.Errorf("summary value = %d, want 5", c.Total)
	}
	if st := slco.Invoke(&c); st != slco.Complete {
		t.Fatalf("second invocation returned %v, want complete", st)
	}
}

func TestDefineGuards(t *testing.T) {
	t.Run("NoSegments", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Define with no segments did not panic")
			}
		}()
		slco.Define[*counter]()
	})
	t.Run("OutOfRange", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("out-of-range resume position did not panic")
			}
		}()
		c := counter{Limit: 1}
		c.Goto(99)
		slco.Invoke(&c)
	})
}
