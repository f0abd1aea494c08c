package msx

import (
	"fmt"
	"math"
	"time"
)

const msPerNanosecond = float64(time.Millisecond)

// ParseDuration parses a duration string with the same grammar as Parse and
// returns the result as a time.Duration. Malformed input is an
// *InvalidFormatError; values outside the time.Duration range (roughly ±292
// years) are an out-of-range error.
func ParseDuration(s string) (time.Duration, error) {
	ms, ok := Parse(s)
	if !ok {
		return 0, &InvalidFormatError{Input: s}
	}
	ns := ms * msPerNanosecond
	if ns > math.MaxInt64 || ns < math.MinInt64 {
		return 0, fmt.Errorf("duration %q out of range", s)
	}
	return time.Duration(ns), nil
}

// FromDuration converts a time.Duration to milliseconds. Unlike
// Duration.Milliseconds it preserves sub-millisecond precision.
func FromDuration(d time.Duration) float64 {
	return float64(d) / msPerNanosecond
}

// FormatDuration renders a time.Duration in compact form, e.g. "2h".
func FormatDuration(d time.Duration) string {
	s, _ := FormatShort(FromDuration(d))
	return s
}

// FormatDurationLong renders a time.Duration in word form, e.g. "2 hours".
func FormatDurationLong(d time.Duration) string {
	s, _ := FormatLong(FromDuration(d))
	return s
}
