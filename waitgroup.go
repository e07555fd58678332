package slco

// A WaitGroup parks coroutines until its counter reaches zero.
//
// Calling Add or Done updates the counter and, when it becomes zero,
// resumes every parked process. Unlike a [Latch], a WaitGroup can be
// raised again after reaching zero; coroutines parking after that wait
// for the next zero crossing.
//
// A WaitGroup must not be shared across goroutines without external
// synchronization.
type WaitGroup struct {
	n       int
	waiters []Process
}

// Add adds delta, which may be negative, to the counter. If the
// counter becomes zero, Add resumes every parked process. If the
// counter goes negative, Add panics.
func (wg *WaitGroup) Add(delta int) {
	wg.n += delta
	if wg.n < 0 {
		panic("slco(WaitGroup): negative counter")
	}
	if wg.n == 0 && delta != 0 {
		waiters := wg.waiters
		wg.waiters = nil
		for _, p := range waiters {
			resumeRetry(p)
		}
	}
}

// Done decrements the counter by one.
func (wg *WaitGroup) Done() {
	wg.Add(-1)
}

// Wait is an await-extern leaf for use with [Frame.AwaitFunc]. With
// the counter at zero it reports [Complete]; otherwise it parks p and
// reports [Scheduled]. A handle already parked is not parked twice.
func (wg *WaitGroup) Wait(p Process) Status {
	if wg.n == 0 {
		return Complete
	}
	wg.waiters = park(wg.waiters, p)
	return Scheduled
}
