package price

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow classifies conversions where the value is outside the range of the target type
	ErrOverflow = errors.New("value out of range")
	// ErrUnderflow classifies conversions where a nonzero value is too small to be represented
	ErrUnderflow = errors.New("value underflows")
	// ErrNotFinite classifies conversions of NaN or infinite values
	ErrNotFinite = errors.New("value is not finite")
)

// ConversionError is returned when a float64 price cannot be represented in the target type
type ConversionError struct {
	Value float64
	Type  string
	err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %g to %s: %v", e.Value, e.Type, e.err)
}

func (e *ConversionError) Unwrap() error {
	return e.err
}

func overflow(f float64, typ string) error {
	return &ConversionError{Value: f, Type: typ, err: ErrOverflow}
}

func notFinite(f float64, typ string) error {
	return &ConversionError{Value: f, Type: typ, err: ErrNotFinite}
}

func underflow(f float64, typ string) error {
	return &ConversionError{Value: f, Type: typ, err: ErrUnderflow}
}

// Underflow returns the error for a nonzero price that vanished to zero in the float64 domain before it could be
// converted to typ.
func Underflow(f float64, typ string) error {
	return underflow(f, typ)
}
