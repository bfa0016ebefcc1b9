//go:build !unix

package syncx

import "syscall"

const (
	codeBusy        = syscall.EBUSY
	codeInvalid     = syscall.EINVAL
	codeNotOwner    = syscall.EPERM
	codeUnsupported = syscall.ENOTSUP
)
