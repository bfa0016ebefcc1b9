//go:build linux

package syncx

import "syscall"

const priorityCeilingSupported = true

// Bounds of the SCHED_FIFO priority range.
const (
	minPriorityCeiling = 1
	maxPriorityCeiling = 99
)

func validatePriorityCeiling(ceiling int) syscall.Errno {
	if ceiling < minPriorityCeiling || ceiling > maxPriorityCeiling {
		return codeInvalid
	}
	return 0
}
