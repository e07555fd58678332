package slco_test

import (
	"testing"

	"github.com/raintherrien/slco"
)

func TestWaitGroup(t *testing.T) {
	var wg slco.WaitGroup
	wg.Add(2)

	w := extern{fn: wg.Wait}
	if st := slco.Invoke(&w); st != slco.Scheduled {
		t.Fatalf("Invoke returned %v, want scheduled", st)
	}

	wg.Done()
	if w.done {
		t.Error("resumed before the counter reached zero")
	}

	wg.Done()
	if !w.done {
		t.Error("not resumed when the counter reached zero")
	}
}

func TestWaitGroupReinvokeWhileParked(t *testing.T) {
	var wg slco.WaitGroup
	wg.Add(1)

	w := tally{fn: wg.Wait}
	for i := 1; i <= 2; i++ {
		if st := slco.Invoke(&w); st != slco.Scheduled {
			t.Fatalf("invocation %d returned %v, want scheduled", i, st)
		}
	}

	wg.Done()
	if w.fired != 1 {
		t.Errorf("post-await statement ran %d times, want 1", w.fired)
	}
}

func TestWaitGroupZeroCounter(t *testing.T) {
	var wg slco.WaitGroup

	w := extern{fn: wg.Wait}
	if st := slco.Invoke(&w); st != slco.Complete {
		t.Errorf("Invoke returned %v, want complete", st)
	}
}

func TestWaitGroupNegativeCounter(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("negative counter did not panic")
		}
	}()
	var wg slco.WaitGroup
	wg.Done()
}
