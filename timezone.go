package certtime

import "time"

// RemoveTimezone strips the timezone designator from t. A timestamp carrying
// a non-UTC offset is first converted to UTC wall-clock time; a timestamp
// that already carries no designator is returned unchanged.
func RemoveTimezone(t time.Time) time.Time {
	return t.In(NoZone)
}

// EnsureUTC returns t with an explicit UTC designator. A timestamp without a
// designator is taken to already represent UTC wall-clock time; one carrying
// another offset is converted.
func EnsureUTC(t time.Time) time.Time {
	return t.UTC()
}

// NormalizeTimezone dispatches to EnsureUTC or RemoveTimezone depending on
// whether the caller wants the result to carry a UTC designator.
func NormalizeTimezone(t time.Time, withTimezone bool) time.Time {
	if withTimezone {
		return EnsureUTC(t)
	}
	return RemoveTimezone(t)
}

// Now returns the current instant, with or without a UTC designator. This is
// the only function in the package that reads the system clock.
func Now(withTimezone bool) time.Time {
	return NormalizeTimezone(time.Now(), withTimezone)
}
