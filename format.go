package certtime

import "time"

// compactUTCLayout is the compact timestamp form used in certificate validity
// fields, with an explicit UTC designator.
const compactUTCLayout = "20060102150405Z"

// FormatTimestamp renders t in the compact "YYYYMMDDHHMMSSZ" form, converting
// to UTC first. The output parses back through ResolveTimespec.
func FormatTimestamp(t time.Time) string {
	return EnsureUTC(t).Format(compactUTCLayout)
}
