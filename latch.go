package slco

// A Latch parks coroutines until it is set, once. It is the simplest
// external collaborator a [Scheduled] coroutine can wait on: the Wait
// leaf parks the process handle, and whoever calls Set plays the role
// of the surrounding scheduler.
//
// A Latch must not be shared across goroutines without external
// synchronization.
type Latch struct {
	set     bool
	waiters []Process
}

// Wait is an await-extern leaf for use with [Frame.AwaitFunc]. Once
// the latch is set it reports [Complete]; before that it parks p and
// reports [Scheduled]. Parking is idempotent: a resumed or re-invoked
// coroutine re-enters its await and polls Wait again, and a handle
// already parked is not parked twice.
func (l *Latch) Wait(p Process) Status {
	if l.set {
		return Complete
	}
	l.waiters = park(l.waiters, p)
	return Scheduled
}

// Set opens the latch and resumes every parked process. [Waiting]
// results are retried promptly; any other result is left with the
// resumed coroutine's owner. Setting an already-set latch does
// nothing.
func (l *Latch) Set() {
	if l.set {
		return
	}
	l.set = true
	waiters := l.waiters
	l.waiters = nil
	for _, p := range waiters {
		resumeRetry(p)
	}
}

// IsSet reports whether the latch has been set.
func (l *Latch) IsSet() bool {
	return l.set
}
