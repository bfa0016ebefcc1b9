package syncx

import "time"

const nanosPerSecond = int64(time.Second)

// Deadline is an absolute wall-clock instant split into whole seconds and a
// nanosecond remainder. Nsec is always in [0, 1_000_000_000).
type Deadline struct {
	Sec  int64
	Nsec int64
}

// DeadlineAfter returns the deadline that lies timeout after now. Negative
// timeouts are treated as zero.
func DeadlineAfter(now time.Time, timeout time.Duration) Deadline {
	if timeout < 0 {
		timeout = 0
	}
	sec := now.Unix() + int64(timeout/time.Second)
	nsec := int64(now.Nanosecond()) + int64(timeout%time.Second)
	return normalizeDeadline(sec, nsec)
}

func normalizeDeadline(sec, nsec int64) Deadline {
	sec += nsec / nanosPerSecond
	nsec %= nanosPerSecond
	if nsec < 0 {
		sec--
		nsec += nanosPerSecond
	}
	return Deadline{Sec: sec, Nsec: nsec}
}

// Time returns the deadline as a time.Time.
func (d Deadline) Time() time.Time {
	return time.Unix(d.Sec, d.Nsec)
}

// Remaining returns how long is left until the deadline, measured from now.
func (d Deadline) Remaining(now time.Time) time.Duration {
	return d.Time().Sub(now)
}
