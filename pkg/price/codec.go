// Package price converts between the float64 domain a price path is computed in and the numeric
// representation the caller stores prices in (integers, fixed-point or floating point).
package price

import (
	"math"
	"reflect"
)

// Codec is the capability a price representation must provide.  FromFloat is a checked conversion that must fail
// rather than wrap or silently truncate when the value cannot be represented.  Float widens a stored price back into
// the float64 domain.
type Codec[T any] interface {
	FromFloat(f float64) (T, error)
	Float(v T) float64
}

// Numeric is the set of built-in Go number kinds supported by Builtin
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

var _ Codec[int64] = builtin[int64]{}

type builtin[T Numeric] struct {
	kind reflect.Kind
	bits int
}

// Builtin returns a checked codec for a built-in numeric type.  Integer kinds round half away from zero before the
// range check, so a price of 41.5 is stored as 42.
func Builtin[T Numeric]() Codec[T] {
	t := reflect.TypeOf(T(0))
	return builtin[T]{kind: t.Kind(), bits: t.Bits()}
}

func (b builtin[T]) Float(v T) float64 {
	return float64(v)
}

func (b builtin[T]) FromFloat(f float64) (T, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, notFinite(f, b.kind.String())
	}

	switch b.kind {
	case reflect.Float64, reflect.Float32:
		if math.Abs(f) > math.MaxFloat32 && b.kind == reflect.Float32 {
			return 0, overflow(f, b.kind.String())
		}
		// a nonzero value too small for the type flushes to zero
		if f != 0 && T(f) == 0 {
			return 0, underflow(f, b.kind.String())
		}
		return T(f), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		r := math.Round(f)
		// bounds are powers of two and exact in float64; the upper bound is exclusive
		lim := math.Ldexp(1, b.bits-1)
		if r < -lim || r >= lim {
			return 0, overflow(f, b.kind.String())
		}
		return T(r), nil
	default:
		r := math.Round(f)
		if r < 0 || r >= math.Ldexp(1, b.bits) {
			return 0, overflow(f, b.kind.String())
		}
		return T(r), nil
	}
}
