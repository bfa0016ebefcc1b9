package syncx

import (
	"time"

	"github.com/Tap30/syncx-go/adapters"
)

// Re-export adapter types for convenience
type (
	LoggerAdapter = adapters.LoggerAdapter
	LogLevel      = adapters.LogLevel
)

// Forever makes Condition.Wait block until it is woken.
const Forever time.Duration = -1

// LockConfig configures a Lock.
type LockConfig struct {
	// LoggerAdapter receives failures that happen while closing.
	// Defaults to a print logger at warn level.
	LoggerAdapter LoggerAdapter
	// PriorityCeiling is the initial priority ceiling. Zero leaves it unset.
	PriorityCeiling int
}

// ConditionConfig configures a Condition.
type ConditionConfig struct {
	// LoggerAdapter receives failures that happen while closing.
	// Defaults to a print logger at warn level.
	LoggerAdapter LoggerAdapter
}

func defaultLogger(logger LoggerAdapter) LoggerAdapter {
	if logger != nil {
		return logger
	}
	return adapters.NewPrintLoggerAdapter(adapters.LogLevelWarn)
}

// LockStatus is the outcome of a non-blocking acquire.
type LockStatus int

const (
	NotAcquired LockStatus = iota
	Acquired
)

func (s LockStatus) String() string {
	if s == Acquired {
		return "acquired"
	}
	return "not acquired"
}

// LockResult pairs a try-lock outcome with the value produced under the lock.
// Value is the zero value when Status is NotAcquired.
type LockResult[T any] struct {
	Status LockStatus
	Value  T
}

// Acquired reports whether the lock was taken and the action ran.
func (r LockResult[T]) Acquired() bool {
	return r.Status == Acquired
}

// WaitOutcome is how a Condition.Wait ended.
type WaitOutcome int

const (
	Signaled WaitOutcome = iota
	TimedOut
)

func (o WaitOutcome) String() string {
	if o == TimedOut {
		return "timed out"
	}
	return "signaled"
}
