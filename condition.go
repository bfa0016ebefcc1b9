package syncx

import (
	"sync"
	"time"
)

// Condition is a condition variable bound to one Lock for its whole life.
//
// Wait must be called while holding the Lock. Wakeups may be spurious from
// the caller's point of view, so callers re-check their predicate in a loop:
//
//	l.Acquire()
//	for !ready() {
//		if _, err := c.Wait(syncx.Forever); err != nil {
//			...
//		}
//	}
//	l.Release()
//
// The Lock must outlive the Condition.
type Condition struct {
	lock      *Lock
	waiters   *waitQueue
	closed    chan struct{}
	closeOnce sync.Once
	logger    LoggerAdapter
}

// NewCondition creates a Condition bound to lock.
func NewCondition(lock *Lock, config ConditionConfig) (*Condition, error) {
	if lock == nil || lock.isClosed() {
		return nil, newError(KindCondInit, codeInvalid)
	}

	return &Condition{
		lock:    lock,
		waiters: newWaitQueue(),
		closed:  make(chan struct{}),
		logger:  defaultLogger(config.LoggerAdapter),
	}, nil
}

// Lock returns the lock the condition is bound to.
func (c *Condition) Lock() *Lock {
	return c.lock
}

func (c *Condition) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

// Signal wakes the longest waiting goroutine, if any.
func (c *Condition) Signal() error {
	if c.isClosed() {
		return newError(KindCondSignal, codeInvalid)
	}
	c.waiters.WakeOne()
	return nil
}

// Broadcast wakes every waiting goroutine.
func (c *Condition) Broadcast() error {
	if c.isClosed() {
		return newError(KindCondBroadcast, codeInvalid)
	}
	c.waiters.WakeAll()
	return nil
}

// Wait atomically releases the lock and suspends the caller until it is
// signaled or timeout elapses. A negative timeout (Forever) waits with no
// limit. The lock is held again when Wait returns.
//
// The outcome is only meaningful when the error is nil.
func (c *Condition) Wait(timeout time.Duration) (WaitOutcome, error) {
	kind := KindCondWait
	if timeout >= 0 {
		kind = KindCondTimedWait
	}

	if c.isClosed() {
		return Signaled, newError(kind, codeInvalid)
	}
	if !c.lock.Locked() {
		return Signaled, newError(kind, codeNotOwner)
	}

	var deadline Deadline
	if timeout >= 0 {
		deadline = DeadlineAfter(time.Now(), timeout)
	}

	// Enqueue before releasing: whoever takes the lock next and signals
	// will find this waiter.
	w := c.waiters.Enqueue()
	if err := c.lock.Release(); err != nil {
		c.waiters.Remove(w)
		return Signaled, wrapError(kind, err)
	}

	outcome, waitErr := c.suspend(w, timeout, deadline, kind)

	if err := c.lock.Acquire(); err != nil && waitErr == nil {
		waitErr = wrapError(kind, err)
	}
	return outcome, waitErr
}

func (c *Condition) suspend(w *waiter, timeout time.Duration, deadline Deadline, kind Kind) (WaitOutcome, error) {
	var expired <-chan time.Time
	if timeout >= 0 {
		timer := time.NewTimer(deadline.Remaining(time.Now()))
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case <-w.wake:
		return Signaled, nil
	case <-expired:
		if c.waiters.Remove(w) {
			return TimedOut, nil
		}
		// Dequeued by a signal racing the deadline.
		return Signaled, nil
	case <-c.closed:
		c.waiters.Remove(w)
		return Signaled, newError(kind, codeInvalid)
	}
}

// Close releases the condition's resources. Closing while goroutines are
// waiting is a caller bug; it is logged, and those waiters fail.
// Calls after the first are no-ops.
func (c *Condition) Close() {
	c.closeOnce.Do(func() {
		if n := c.waiters.Len(); n > 0 {
			c.logger.Error("Closing condition with %d waiters: %v", n, newError(KindCondDestroy, codeBusy))
		}
		close(c.closed)
		c.logger.Debug("Condition closed")
	})
}

func wrapError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Code: CodeOf(err), Err: err}
}
