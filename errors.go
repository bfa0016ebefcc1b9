package syncx

import (
	"errors"
	"fmt"
	"syscall"
)

// Kind identifies the operation that failed.
type Kind int

const (
	KindInit Kind = iota + 1
	KindLock
	KindUnlock
	KindTryLock
	KindDestroy
	KindCondInit
	KindCondSignal
	KindCondBroadcast
	KindCondWait
	KindCondTimedWait
	KindCondDestroy
	KindGetPriorityCeiling
	KindSetPriorityCeiling
)

var kindNames = map[Kind]string{
	KindInit:               "lock init",
	KindLock:               "lock",
	KindUnlock:             "unlock",
	KindTryLock:            "try lock",
	KindDestroy:            "lock destroy",
	KindCondInit:           "condition init",
	KindCondSignal:         "condition signal",
	KindCondBroadcast:      "condition broadcast",
	KindCondWait:           "condition wait",
	KindCondTimedWait:      "condition timed wait",
	KindCondDestroy:        "condition destroy",
	KindGetPriorityCeiling: "get priority ceiling",
	KindSetPriorityCeiling: "set priority ceiling",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Sentinels for errors.Is. An *Error matches the sentinel of its Kind.
var (
	ErrInit               = &Error{Kind: KindInit}
	ErrLock               = &Error{Kind: KindLock}
	ErrUnlock             = &Error{Kind: KindUnlock}
	ErrTryLock            = &Error{Kind: KindTryLock}
	ErrDestroy            = &Error{Kind: KindDestroy}
	ErrCondInit           = &Error{Kind: KindCondInit}
	ErrCondSignal         = &Error{Kind: KindCondSignal}
	ErrCondBroadcast      = &Error{Kind: KindCondBroadcast}
	ErrCondWait           = &Error{Kind: KindCondWait}
	ErrCondTimedWait      = &Error{Kind: KindCondTimedWait}
	ErrCondDestroy        = &Error{Kind: KindCondDestroy}
	ErrGetPriorityCeiling = &Error{Kind: KindGetPriorityCeiling}
	ErrSetPriorityCeiling = &Error{Kind: KindSetPriorityCeiling}
)

// Error is returned by every operation that fails for a reason other than
// contention or an elapsed timeout.
type Error struct {
	Kind Kind
	// Code is the platform error number describing the failure, zero if none.
	Code syscall.Errno
	// Err is an optional underlying cause.
	Err error
}

func newError(kind Kind, code syscall.Errno) *Error {
	return &Error{Kind: kind, Code: code}
}

func (e *Error) Error() string {
	msg := "syncx: " + e.Kind.String() + " failed"
	if e.Code != 0 {
		msg += fmt.Sprintf(": %s (errno %d)", e.Code.Error(), int(e.Code))
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the code and the cause, so errors.Is works against
// either a platform errno or a wrapped error.
func (e *Error) Unwrap() []error {
	var errs []error
	if e.Code != 0 {
		errs = append(errs, e.Code)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Is reports whether target is a sentinel of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == 0 && t.Err == nil && t.Kind == e.Kind
}

// CodeOf returns the platform error number carried by err, or zero.
func CodeOf(err error) syscall.Errno {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}
