//go:build !deadlock

// Package syncutil provides the mutex guarding internal bookkeeping, with
// optional deadlock detection. Build with -tags=deadlock to enable it.
package syncutil

import "sync"

// DeadlockEnabled is true if the deadlock detector is enabled.
const DeadlockEnabled = false

// A Mutex is a mutual exclusion lock.
type Mutex struct {
	sync.Mutex
}
