package msx

import (
	"math"
	"strconv"
)

// FormatShort renders a millisecond count in compact form, e.g. "2h", "-30m",
// "500ms". It fails only for NaN or infinite input.
func FormatShort(ms float64) (string, error) {
	if !isFinite(ms) {
		return "", &NonFiniteValueError{Value: ms}
	}
	return format(ms, false), nil
}

// FormatLong renders a millisecond count in word form with pluralization,
// e.g. "2 hours", "1 minute", "-30 minutes". It fails only for NaN or
// infinite input.
func FormatLong(ms float64) (string, error) {
	if !isFinite(ms) {
		return "", &NonFiniteValueError{Value: ms}
	}
	return format(ms, true), nil
}

// format picks the largest unit that fits the magnitude and rounds to it.
// Day is the largest auto-selected unit: a 10-day duration renders as "10d",
// not "1w3d". Week and year only appear in explicit parse results.
func format(ms float64, long bool) string {
	abs := math.Abs(ms)

	var unit Unit
	switch {
	case abs >= MsPerDay:
		unit = Day
	case abs >= MsPerHour:
		unit = Hour
	case abs >= MsPerMinute:
		unit = Minute
	case abs >= MsPerSecond:
		unit = Second
	default:
		unit = Millisecond
	}

	n := math.Round(abs / unit.Milliseconds())

	// Zero renders unsigned even for negative input (no "-0ms").
	var sign string
	if ms < 0 && n != 0 {
		sign = "-"
	}
	num := strconv.FormatFloat(n, 'f', -1, 64)

	if long {
		word := unit.word()
		if n != 1 {
			word += "s"
		}
		return sign + num + " " + word
	}
	return sign + num + unit.String()
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
