//go:build unix

package syncx

import "golang.org/x/sys/unix"

const (
	codeBusy        = unix.EBUSY
	codeInvalid     = unix.EINVAL
	codeNotOwner    = unix.EPERM
	codeUnsupported = unix.ENOTSUP
)

// Timespec converts d to the representation taken by timed waits on unix.
func (d Deadline) Timespec() unix.Timespec {
	return unix.NsecToTimespec(d.Sec*nanosPerSecond + d.Nsec)
}
