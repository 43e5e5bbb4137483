// Package timestamp provides standardized handling of PULSE envelope
// timestamps.
//
// The wire representation is an ISO-8601 UTC string with a literal "Z"
// suffix and up to microsecond precision ("2025-01-01T12:00:00.123456Z").
// The compact wire format carries the same instant as unsigned 64-bit
// microseconds since the Unix epoch. This package is the single place
// where those two representations are produced and parsed, so the rest
// of the codebase never formats time by hand.
//
// Zero Value Semantics:
//   - An empty string means "not set"
//   - Parse of an empty string returns an error; callers treating absence
//     as valid must check before parsing
//
// Usage:
//
//	// Stamp a new envelope
//	env.Timestamp = timestamp.Now()
//
//	// Check freshness
//	t, err := timestamp.Parse(env.Timestamp)
//
//	// Compact codec conversions
//	micros := timestamp.ToUnixMicro(t)
//	t = timestamp.FromUnixMicro(micros)
package timestamp

import (
	"fmt"
	"strings"
	"time"
)

// layout is RFC 3339 with an optional trailing fraction up to microseconds.
// Trailing zeros in the fraction are trimmed on output, matching the
// reference implementation's isoformat behavior.
const layout = "2006-01-02T15:04:05.999999Z07:00"

// Now returns the current UTC time formatted for an envelope, truncated
// to microsecond precision.
func Now() string {
	return Format(time.Now())
}

// Format converts a time.Time to the envelope wire string. The result is
// always UTC with a literal "Z" suffix. Returns "" for the zero time.
func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Truncate(time.Microsecond).Format(layout)
}

// Parse converts an envelope wire string back to a time.Time in UTC.
// Accepts both the canonical "Z" suffix and explicit numeric offsets
// ("+00:00"), with or without a fractional second.
func Parse(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	// Normalize a bare "Z" so both suffix styles parse with one layout.
	candidate := s
	if strings.HasSuffix(candidate, "Z") {
		candidate = strings.TrimSuffix(candidate, "Z") + "+00:00"
	}

	t, err := time.Parse("2006-01-02T15:04:05.999999999-07:00", candidate)
	if err != nil {
		// Timestamps produced without timezone info are treated as UTC.
		t, err = time.Parse("2006-01-02T15:04:05.999999999", candidate)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid timestamp format %q: %w", s, err)
		}
	}
	return t.UTC(), nil
}

// Age returns how long ago the envelope timestamp occurred, relative to
// now. Negative values mean the timestamp lies in the future.
func Age(s string) (time.Duration, error) {
	t, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return time.Since(t), nil
}

// ToUnixMicro converts a time.Time to microseconds since the Unix epoch.
// Returns 0 for the zero time.
func ToUnixMicro(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMicro()
}

// FromUnixMicro converts microseconds since the Unix epoch to a UTC
// time.Time. Returns the zero time for 0.
func FromUnixMicro(us int64) time.Time {
	if us == 0 {
		return time.Time{}
	}
	return time.UnixMicro(us).UTC()
}
