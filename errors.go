package msx

import "fmt"

// InvalidFormatError reports a string that doesn't match the duration grammar
// or names an unknown unit.
type InvalidFormatError struct {
	Input string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid duration %q: expected a number followed by a unit (e.g. \"2h\", \"1.5 hours\")", e.Input)
}

// InvalidTypeError reports a Convert argument that is neither a string nor a
// numeric value.
type InvalidTypeError struct {
	Value any
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid value of type %T: expected a string or a number", e.Value)
}

// NonFiniteValueError reports a NaN or infinite millisecond value passed to a
// formatter, or a parse whose product overflowed to a non-finite number.
type NonFiniteValueError struct {
	Value float64
}

func (e *NonFiniteValueError) Error() string {
	return fmt.Sprintf("non-finite value %v: expected a finite number of milliseconds", e.Value)
}
