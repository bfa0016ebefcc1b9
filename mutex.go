package syncx

import (
	"sync"
	"sync/atomic"
)

// Lock is a mutual exclusion lock.
//
// Unlike sync.Mutex, misuse is reported as an error instead of a fatal
// runtime error: releasing a lock that is not held returns ErrUnlock, and
// every operation on a closed lock fails with EINVAL.
//
// Go has no goroutine identity, so Release cannot tell the holder apart from
// any other goroutine. Callers keep Acquire and Release paired.
type Lock struct {
	sem       chan struct{} // one slot: full while held
	closed    chan struct{}
	closeOnce sync.Once
	ceiling   atomic.Int64
	logger    LoggerAdapter
}

// NewLock creates an unlocked Lock.
func NewLock(config LockConfig) (*Lock, error) {
	l := &Lock{
		sem:    make(chan struct{}, 1),
		closed: make(chan struct{}),
		logger: defaultLogger(config.LoggerAdapter),
	}

	if config.PriorityCeiling != 0 {
		if code := validatePriorityCeiling(config.PriorityCeiling); code != 0 {
			return nil, newError(KindInit, code)
		}
		l.ceiling.Store(int64(config.PriorityCeiling))
	}

	return l, nil
}

// NewDefaultLock creates a Lock with the default configuration.
func NewDefaultLock() (*Lock, error) {
	return NewLock(LockConfig{})
}

func (l *Lock) isClosed() bool {
	select {
	case <-l.closed:
		return true
	default:
		return false
	}
}

// Acquire blocks until the lock is held by the caller.
// It fails if the lock is closed before or while waiting.
func (l *Lock) Acquire() error {
	if l.isClosed() {
		return newError(KindLock, codeInvalid)
	}

	select {
	case l.sem <- struct{}{}:
		return nil
	case <-l.closed:
		return newError(KindLock, codeInvalid)
	}
}

// Release unlocks the lock.
func (l *Lock) Release() error {
	if l.isClosed() {
		return newError(KindUnlock, codeInvalid)
	}

	select {
	case <-l.sem:
		return nil
	default:
		return newError(KindUnlock, codeNotOwner)
	}
}

// tryAcquire takes the lock if doing so would not block.
func (l *Lock) tryAcquire() (bool, error) {
	if l.isClosed() {
		return false, newError(KindTryLock, codeInvalid)
	}

	select {
	case l.sem <- struct{}{}:
		return true, nil
	default:
		return false, nil
	}
}

// releaseDeferred is Release for exit paths that must not fail.
func (l *Lock) releaseDeferred() {
	if err := l.Release(); err != nil {
		l.logger.Error("Failed to release lock after action: %v", err)
	}
}

// Locked reports whether the lock is currently held. The answer may be stale
// by the time it is returned.
func (l *Lock) Locked() bool {
	return len(l.sem) == 1
}

// RunAtomic executes a task with exclusive lock. The lock is released on
// every exit path, including a panic in task.
func (l *Lock) RunAtomic(task func() error) error {
	if err := l.Acquire(); err != nil {
		return err
	}
	defer l.releaseDeferred()
	return task()
}

// TryRunAtomic executes task only if the lock can be taken without blocking.
// It reports whether task ran.
func (l *Lock) TryRunAtomic(task func() error) (bool, error) {
	ok, err := l.tryAcquire()
	if err != nil || !ok {
		return false, err
	}
	defer l.releaseDeferred()
	return true, task()
}

// WithLock runs action while holding l and returns its result.
func WithLock[T any](l *Lock, action func() (T, error)) (T, error) {
	var value T
	err := l.RunAtomic(func() error {
		var err error
		value, err = action()
		return err
	})
	return value, err
}

// TryLock runs action while holding l if the lock is free, without blocking.
// A contended lock yields a NotAcquired result and a nil error.
func TryLock[T any](l *Lock, action func() (T, error)) (LockResult[T], error) {
	var result LockResult[T]
	ok, err := l.TryRunAtomic(func() error {
		var err error
		result.Value, err = action()
		return err
	})
	if ok {
		result.Status = Acquired
	}
	return result, err
}

// SetPriorityCeiling sets the priority ceiling and returns the previous one.
// The ceiling is advisory; it does not change scheduling of the holder.
func (l *Lock) SetPriorityCeiling(ceiling int) (int, error) {
	if l.isClosed() {
		return 0, newError(KindSetPriorityCeiling, codeInvalid)
	}
	if code := validatePriorityCeiling(ceiling); code != 0 {
		return 0, newError(KindSetPriorityCeiling, code)
	}
	return int(l.ceiling.Swap(int64(ceiling))), nil
}

// PriorityCeiling returns the current priority ceiling, zero if unset.
func (l *Lock) PriorityCeiling() (int, error) {
	if l.isClosed() {
		return 0, newError(KindGetPriorityCeiling, codeInvalid)
	}
	if !priorityCeilingSupported {
		return 0, newError(KindGetPriorityCeiling, codeUnsupported)
	}
	return int(l.ceiling.Load()), nil
}

// Close releases the lock's resources. Goroutines blocked in Acquire fail.
// Closing a held lock is a caller bug; it is logged, not returned.
// Calls after the first are no-ops.
func (l *Lock) Close() {
	l.closeOnce.Do(func() {
		if l.Locked() {
			l.logger.Error("Closing lock: %v", newError(KindDestroy, codeBusy))
		}
		close(l.closed)
		l.logger.Debug("Lock closed")
	})
}
