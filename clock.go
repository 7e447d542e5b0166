package certtime

import "time"

// Clock supplies reference instants for timespec resolution. Production code
// uses SystemClock; tests pin resolution to a known instant with FixedClock
// instead of reading the wall clock.
type Clock interface {
	// Now returns the clock's current instant, with or without a UTC
	// designator per withTimezone.
	Now(withTimezone bool) time.Time
}

// SystemClock reads the system clock.
type SystemClock struct{}

func (SystemClock) Now(withTimezone bool) time.Time {
	return Now(withTimezone)
}

// FixedClock always reports the same instant.
type FixedClock struct {
	Time time.Time
}

// NewFixedClock returns a clock frozen at t.
func NewFixedClock(t time.Time) FixedClock {
	return FixedClock{Time: t}
}

func (c FixedClock) Now(withTimezone bool) time.Time {
	return NormalizeTimezone(c.Time, withTimezone)
}
