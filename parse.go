package msx

import (
	"math"
	"strconv"
	"strings"
)

// maxInputLength caps the parse input so pathological strings are rejected
// before any scanning work happens.
const maxInputLength = 100

// ParseResult carries the parsed pieces of a duration string.
type ParseResult struct {
	// Value is the numeric portion with the sign applied.
	Value float64
	// Unit is the canonical unit the alias token resolved to.
	Unit Unit
	// Milliseconds is Value scaled by the unit's millisecond value.
	Milliseconds float64
}

// Parse converts a duration string like "2h", "1.5 hours", or "-30m" into
// milliseconds. The second return value reports whether the input matched;
// malformed input never panics or errors, it simply doesn't match.
//
// The grammar is one optional sign, one decimal number, optional whitespace,
// and one unit alias, with nothing left over. A trailing "." after the digits
// is accepted ("2." parses as 2); a fraction with no leading digit (".5") is
// not. Unit aliases are case-insensitive. Inputs longer than 100 characters
// never match.
func Parse(s string) (float64, bool) {
	r, ok := parse(s)
	if !ok {
		return 0, false
	}
	return r.Milliseconds, true
}

// ParseDetailed is Parse but additionally exposes the numeric value and the
// resolved canonical unit. It applies the exact same grammar.
func ParseDetailed(s string) (ParseResult, bool) {
	return parse(s)
}

func parse(s string) (ParseResult, bool) {
	if len(s) > maxInputLength {
		return ParseResult{}, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return ParseResult{}, false
	}

	// Single forward scan: sign, digits, optional fraction, optional
	// whitespace, unit letters. Anything out of place rejects the input.
	i := 0
	if s[i] == '+' || s[i] == '-' {
		i++
	}

	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if digits == 0 {
		return ParseResult{}, false
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}
	numEnd := i

	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}

	unitStart := i
	for i < len(s) && isLetter(s[i]) {
		i++
	}
	if unitStart == i || i != len(s) {
		// Missing unit, or trailing garbage after it.
		return ParseResult{}, false
	}

	unit, ok := LookupUnit(s[unitStart:])
	if !ok {
		return ParseResult{}, false
	}

	// The slice includes the sign, so the sign negates the whole value.
	value, err := strconv.ParseFloat(s[:numEnd], 64)
	if err != nil {
		return ParseResult{}, false
	}

	ms := value * unit.Milliseconds()
	if math.IsInf(ms, 0) || math.IsNaN(ms) {
		return ParseResult{}, false
	}

	return ParseResult{Value: value, Unit: unit, Milliseconds: ms}, true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
