//go:build !linux

package syncx

import "syscall"

// Priority ceilings are only honored on linux.
const priorityCeilingSupported = false

func validatePriorityCeiling(int) syscall.Errno {
	return codeUnsupported
}
