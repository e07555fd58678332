package slco

import "errors"

// ErrOverBudget reports a semaphore demand larger than the semaphore's
// maximum combined weight. [Semaphore.Acquire] is a leaf with no
// capture to record a cause in, so the awaiting body throws this value
// itself if its caller needs one.
var ErrOverBudget = errors.New("slco: semaphore demand exceeds capacity")

// A Semaphore bounds access to a resource by weight. Coroutines
// request access with a given weight through the Acquire leaf and park
// until it fits.
//
// A Semaphore must not be shared across goroutines without external
// synchronization.
type Semaphore struct {
	size    int64
	cur     int64
	waiters []Process
}

// NewSemaphore creates a new weighted semaphore with the given maximum
// combined weight.
func NewSemaphore(n int64) *Semaphore {
	return &Semaphore{size: n}
}

// Acquire is an await-extern leaf for use with [Frame.AwaitFunc],
// bound to a weight in the body:
//
//	if st := c.AwaitFunc(acqLabel, p, func(p slco.Process) slco.Status {
//		return sem.Acquire(p, 2)
//	}); st != slco.Complete {
//		return st
//	}
//
// If a weight of n fits, Acquire takes it and reports [Complete].
// Otherwise it parks p and reports [Scheduled]; [Release] resumes
// parked processes, whose re-entered Acquire re-checks the demand, so
// the leaf is idempotent across resumptions and a handle already
// parked is not parked twice. A demand that can never fit reports
// [Error]; the awaiting body records [ErrOverBudget] with [Frame.Throw]
// if its caller needs the cause. A negative weight panics.
func (s *Semaphore) Acquire(p Process, n int64) Status {
	if n < 0 {
		panic("slco(Semaphore): negative weight")
	}
	if n > s.size {
		return Error
	}
	if s.size-s.cur < n {
		s.waiters = park(s.waiters, p)
		return Scheduled
	}
	s.cur += n
	return Complete
}

// Release returns a weight of n to the semaphore and resumes parked
// processes. Releasing more than is currently held panics.
func (s *Semaphore) Release(n int64) {
	if n < 0 {
		panic("slco(Semaphore): negative weight")
	}
	s.cur -= n
	if s.cur < 0 {
		panic("slco(Semaphore): released more than held")
	}
	waiters := s.waiters
	s.waiters = nil
	for _, p := range waiters {
		resumeRetry(p)
	}
}
