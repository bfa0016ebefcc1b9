package syncx

import "sync/atomic"

// OnceGuard runs a unit of work at most once across any number of
// concurrent callers.
//
// "Executed" means attempted: if the action fails or panics the guard is
// still done and later calls do not retry. Callers needing retry on failure
// build it on top.
type OnceGuard struct {
	lock *Lock
	done atomic.Bool // written only under lock
}

// NewOnceGuard creates a guard in the pending state. config applies to the
// guard's private lock.
func NewOnceGuard(config LockConfig) (*OnceGuard, error) {
	lock, err := NewLock(config)
	if err != nil {
		return nil, err
	}
	return &OnceGuard{lock: lock}, nil
}

// Do runs action if no call has run before. It reports whether action ran,
// and returns the action's error to the one caller that ran it.
func (g *OnceGuard) Do(action func() error) (bool, error) {
	var ran bool
	err := g.lock.RunAtomic(func() error {
		if g.done.Load() {
			return nil
		}
		g.done.Store(true)
		ran = true
		return action()
	})
	return ran, err
}

// Execute is Do for actions that produce a value. The value is the zero
// value when the action did not run.
func Execute[T any](g *OnceGuard, action func() (T, error)) (T, bool, error) {
	var value T
	ran, err := g.Do(func() error {
		var err error
		value, err = action()
		return err
	})
	return value, ran, err
}

// Done reports whether an action has been run.
func (g *OnceGuard) Done() bool {
	return g.done.Load()
}

// Close releases the guard's private lock.
func (g *OnceGuard) Close() {
	g.lock.Close()
}
