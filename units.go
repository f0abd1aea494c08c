// Package msx converts human-readable duration strings (e.g. "2h",
// "1.5 hours", "-30m") to millisecond counts and back.
//
// Parsing is deliberately strict: exactly one number followed by exactly one
// unit, with the whole input consumed. Combined units ("1h30m") and
// calendar-aware units (months) are not supported.
package msx

// Unit is the canonical symbol for a supported time unit.
type Unit string

const (
	Millisecond Unit = "ms"
	Second      Unit = "s"
	Minute      Unit = "m"
	Hour        Unit = "h"
	Day         Unit = "d"
	Week        Unit = "w"
	Year        Unit = "y"
)

// Milliseconds per unit. A year is 365.25 days.
const (
	MsPerMillisecond = 1
	MsPerSecond      = 1000
	MsPerMinute      = 60 * MsPerSecond
	MsPerHour        = 60 * MsPerMinute
	MsPerDay         = 24 * MsPerHour
	MsPerWeek        = 7 * MsPerDay
	MsPerYear        = 31557600000
)

var unitMilliseconds = map[Unit]float64{
	Millisecond: MsPerMillisecond,
	Second:      MsPerSecond,
	Minute:      MsPerMinute,
	Hour:        MsPerHour,
	Day:         MsPerDay,
	Week:        MsPerWeek,
	Year:        MsPerYear,
}

// unitAliases maps every accepted spelling (lowercase) to its canonical unit.
var unitAliases = map[string]Unit{
	"ms":           Millisecond,
	"msec":         Millisecond,
	"msecs":        Millisecond,
	"millisecond":  Millisecond,
	"milliseconds": Millisecond,
	"s":            Second,
	"sec":          Second,
	"secs":         Second,
	"second":       Second,
	"seconds":      Second,
	"m":            Minute,
	"min":          Minute,
	"mins":         Minute,
	"minute":       Minute,
	"minutes":      Minute,
	"h":            Hour,
	"hr":           Hour,
	"hrs":          Hour,
	"hour":         Hour,
	"hours":        Hour,
	"d":            Day,
	"day":          Day,
	"days":         Day,
	"w":            Week,
	"week":         Week,
	"weeks":        Week,
	"y":            Year,
	"yr":           Year,
	"yrs":          Year,
	"year":         Year,
	"years":        Year,
}

// longestAlias bounds the case-folding buffer in LookupUnit
// ("milliseconds" is the longest accepted spelling).
const longestAlias = len("milliseconds")

// String returns the canonical symbol.
func (u Unit) String() string {
	return string(u)
}

// Milliseconds returns the unit's millisecond value, or 0 for an unknown unit.
func (u Unit) Milliseconds() float64 {
	return unitMilliseconds[u]
}

// word returns the singular English word for the unit.
func (u Unit) word() string {
	switch u {
	case Millisecond:
		return "millisecond"
	case Second:
		return "second"
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case Day:
		return "day"
	case Week:
		return "week"
	case Year:
		return "year"
	}
	return string(u)
}

// Units returns the millisecond value of every supported unit. The returned
// map is a copy; callers may modify it freely.
func Units() map[Unit]float64 {
	units := make(map[Unit]float64, len(unitMilliseconds))
	for u, ms := range unitMilliseconds {
		units[u] = ms
	}
	return units
}

// LookupUnit resolves a unit alias (e.g. "hrs", "SECONDS") to its canonical
// unit. The lookup is case-insensitive. The second return value reports
// whether the alias is recognized.
func LookupUnit(alias string) (Unit, bool) {
	if u, ok := unitAliases[alias]; ok {
		return u, true
	}
	if len(alias) > longestAlias {
		return "", false
	}

	// Fold to lowercase in a stack buffer so mixed-case lookups ("HOURS")
	// don't allocate. Non-ASCII bytes can't appear in any alias, so a byte
	// fold is sufficient.
	var buf [longestAlias]byte
	for i := 0; i < len(alias); i++ {
		c := alias[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		buf[i] = c
	}
	u, ok := unitAliases[string(buf[:len(alias)])]
	return u, ok
}
