// Package certtime provides timestamp utilities for certificate and
// credential lifecycle tooling.
//
// It normalizes timezone designators on timestamps, converts between
// timestamps and fractional epoch seconds, and resolves compact timespec
// strings against a reference instant: relative offsets such as "+1d2h3m4s"
// or "-10w20d30h40m50s", and absolute forms such as "20240102040506Z" or
// "20240102040506+0100".
//
// Go's time.Time always carries a location, so the package distinguishes two
// kinds of timestamps by their location marker: UTC marks a timestamp that
// carries an explicit UTC designator, and NoZone marks one that carries no
// designator at all. A NoZone timestamp always represents UTC wall-clock
// time; this package never consults the local timezone.
package certtime

import "time"

// Location markers for the two timestamp kinds handled by this package.
var (
	// UTC marks timestamps that carry an explicit UTC designator.
	UTC = time.UTC

	// NoZone marks timestamps that carry no timezone designator. Its offset
	// is zero, so a NoZone timestamp's absolute instant always equals its
	// wall-clock reading interpreted as UTC.
	NoZone = time.FixedZone("", 0)
)
