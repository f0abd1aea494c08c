package msx

// FormatOptions configures the formatting half of Convert.
type FormatOptions struct {
	// Long selects word form ("2 hours") over the compact form ("2h").
	Long bool
}

// Convert is the combined entry point: a string argument is parsed into
// milliseconds (float64), and a numeric argument is formatted into a string.
// Unlike Parse, a string that fails to parse is an *InvalidFormatError rather
// than a quiet non-match, so a successful return is always usable.
//
// Accepted numeric kinds are the built-in int, uint, and float types.
// time.Duration is deliberately not among them: its underlying value is
// nanoseconds, and silently treating it as milliseconds would corrupt the
// result. Use FromDuration or FormatDuration instead. Any other type is an
// *InvalidTypeError.
func Convert(value any, opts ...FormatOptions) (any, error) {
	var o FormatOptions
	if len(opts) > 0 {
		o = opts[0]
	}

	switch v := value.(type) {
	case string:
		ms, ok := Parse(v)
		if !ok {
			return nil, &InvalidFormatError{Input: v}
		}
		return ms, nil
	case float64:
		return convertNumber(v, o)
	case float32:
		return convertNumber(float64(v), o)
	case int:
		return convertNumber(float64(v), o)
	case int8:
		return convertNumber(float64(v), o)
	case int16:
		return convertNumber(float64(v), o)
	case int32:
		return convertNumber(float64(v), o)
	case int64:
		return convertNumber(float64(v), o)
	case uint:
		return convertNumber(float64(v), o)
	case uint8:
		return convertNumber(float64(v), o)
	case uint16:
		return convertNumber(float64(v), o)
	case uint32:
		return convertNumber(float64(v), o)
	case uint64:
		return convertNumber(float64(v), o)
	default:
		return nil, &InvalidTypeError{Value: value}
	}
}

func convertNumber(ms float64, o FormatOptions) (any, error) {
	if o.Long {
		return FormatLong(ms)
	}
	return FormatShort(ms)
}
