package ptysession

import "time"

// Deadline is a synchronous timeout check for polling loops — PTY test
// harnesses and subprocess-startup waits that can't simply block on a
// channel (spec §5).
type Deadline struct {
	expires time.Time
}

// NewDeadline returns a Deadline that expires after d.
func NewDeadline(d time.Duration) Deadline {
	return Deadline{expires: time.Now().Add(d)}
}

// Expired reports whether the deadline has passed.
func (d Deadline) Expired() bool { return !d.expires.IsZero() && time.Now().After(d.expires) }

// Remaining returns the time left, or 0 if already expired.
func (d Deadline) Remaining() time.Duration {
	left := time.Until(d.expires)
	if left < 0 {
		return 0
	}
	return left
}

// AsyncDebouncedDeadline restarts its countdown every time Reset is called,
// for "print after N ms of silence" idioms (spec §5).
type AsyncDebouncedDeadline struct {
	window time.Duration
	inner  Deadline
}

func NewAsyncDebouncedDeadline(window time.Duration) *AsyncDebouncedDeadline {
	return &AsyncDebouncedDeadline{window: window, inner: NewDeadline(window)}
}

// Reset restarts the debounce window, called whenever a new event arrives.
func (a *AsyncDebouncedDeadline) Reset() { a.inner = NewDeadline(a.window) }

// Fired reports whether the window has elapsed since the last Reset.
func (a *AsyncDebouncedDeadline) Fired() bool { return a.inner.Expired() }
