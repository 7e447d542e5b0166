package certtime

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidTimespec is returned when a timespec string matches neither the
// relative grammar nor any of the absolute timestamp formats. Every parse
// failure in this package wraps it, so callers can test with errors.Is.
var ErrInvalidTimespec = errors.New("invalid timespec")

// relativePairPattern matches one count+unit pair at the start of the
// remainder of a relative timespec.
var relativePairPattern = regexp.MustCompile(`^(\d+)([wdhms])`)

// unitDurations maps the relative timespec unit letters to their lengths.
// Weeks, days, hours and minutes all reduce to fixed second counts; there is
// no calendar-aware month or year arithmetic.
var unitDurations = map[string]time.Duration{
	"w": 7 * 24 * time.Hour,
	"d": 24 * time.Hour,
	"h": time.Hour,
	"m": time.Minute,
	"s": time.Second,
}

// absoluteLayouts lists the accepted absolute timestamp formats, tried in
// order: compact YYYYMMDDHHMM[SS] with either a literal Z suffix or a
// numeric ±HHMM offset.
var absoluteLayouts = []string{
	"20060102150405Z",
	"200601021504Z",
	"20060102150405-0700",
	"200601021504-0700",
}

// parseRelativeOffset parses the body of a relative timespec (the part after
// the sign) into a duration. The body is a sequence of count+unit pairs such
// as "1d2h3m4s"; units may repeat and appear in any order, and all pairs are
// summed. The single literal "0" denotes a zero offset.
func parseRelativeOffset(body string) (time.Duration, error) {
	if body == "0" {
		return 0, nil
	}
	if body == "" {
		return 0, errors.Wrap(ErrInvalidTimespec, "missing offset after sign")
	}

	var total time.Duration
	rest := body
	for rest != "" {
		m := relativePairPattern.FindStringSubmatch(rest)
		if m == nil {
			return 0, errors.Wrapf(ErrInvalidTimespec, "unexpected %q in relative offset %q", rest, body)
		}
		count, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrInvalidTimespec, "invalid count %q in relative offset %q", m[1], body)
		}
		unit := unitDurations[m[2]]
		if count > math.MaxInt64/int64(unit) {
			return 0, errors.Wrapf(ErrInvalidTimespec, "offset %q is too large", body)
		}
		pair := time.Duration(count) * unit
		if total > math.MaxInt64-pair {
			return 0, errors.Wrapf(ErrInvalidTimespec, "offset %q is too large", body)
		}
		total += pair
		rest = rest[len(m[0]):]
	}
	return total, nil
}

// parseAbsoluteTimestamp parses a compact absolute timestamp and returns the
// instant converted to UTC.
func parseAbsoluteTimestamp(value string) (time.Time, error) {
	for _, layout := range absoluteLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.Wrapf(ErrInvalidTimespec, "%q is not a relative offset or an absolute timestamp", value)
}

// ResolveTimespec resolves a timespec string against the reference instant
// now. Strings starting with "+" or "-" are relative offsets applied to now;
// anything else must be one of the absolute timestamp formats. A zero now
// means the current instant. The result carries or omits the UTC designator
// per withTimezone.
func ResolveTimespec(value string, withTimezone bool, now time.Time) (time.Time, error) {
	if now.IsZero() {
		now = Now(false)
	}

	var result time.Time
	if strings.HasPrefix(value, "+") || strings.HasPrefix(value, "-") {
		offset, err := parseRelativeOffset(value[1:])
		if err != nil {
			return time.Time{}, err
		}
		if value[0] == '-' {
			offset = -offset
		}
		result = now.Add(offset)
	} else {
		var err error
		result, err = parseAbsoluteTimestamp(value)
		if err != nil {
			return time.Time{}, err
		}
	}
	return NormalizeTimezone(result, withTimezone), nil
}

// ResolveTimespecOption resolves a timespec string that originated from the
// named configuration option, attaching the option name to any parse error
// for diagnostics. The resolution itself is identical to ResolveTimespec.
func ResolveTimespecOption(value string, optionName string, withTimezone bool, now time.Time) (time.Time, error) {
	t, err := ResolveTimespec(value, withTimezone, now)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid value for %s", optionName)
	}
	return t, nil
}
