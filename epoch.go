package certtime

import (
	"math"
	"time"
)

// EpochSeconds returns the fractional number of seconds elapsed between the
// UTC epoch and t, preserving microsecond resolution. A timestamp without a
// timezone designator is interpreted as UTC wall-clock time.
func EpochSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond()/1000)/1e6
}

// FromEpochSeconds builds the timestamp that lies the given fractional number
// of seconds after the UTC epoch. The value is rounded to the nearest
// microsecond before conversion, and the result carries or omits the UTC
// designator per withTimezone.
func FromEpochSeconds(seconds float64, withTimezone bool) time.Time {
	t := time.UnixMicro(int64(math.Round(seconds * 1e6))).UTC()
	return NormalizeTimezone(t, withTimezone)
}
