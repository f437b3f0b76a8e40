// Package gbm simulates price paths following a Geometric Brownian Motion.
//
// The log of the price follows a Brownian motion with drift.  Over a step of length dt the price moves by
//
//	price[i] = price[i-1] * exp((drift - volatility^2/2)*dt + volatility*sqrt(dt)*z)
//
// where z is a standard normal deviate.  The recurrence is computed in float64 and each price is converted into
// the caller's numeric type with a checked conversion, so narrow types fail loudly instead of wrapping.
package gbm

import (
	"fmt"
	"math"

	"github.com/golang/glog"

	"github.com/BTBurke/stocks/pkg/price"
	"github.com/BTBurke/stocks/pkg/rng"
)

// Generator produces GBM price paths in the representation T.  A Generator exclusively owns its sampler, whose state
// advances with every path generated.  It is not safe for concurrent use; run independent generators instead.
type Generator[T any] struct {
	rng   rng.RNG
	codec price.Codec[T]
}

// New returns a generator for a built-in numeric type, seeded once with seed
func New[T price.Numeric](seed int64) *Generator[T] {
	return NewWithCodec[T](seed, price.Builtin[T]())
}

// NewWithCodec returns a generator for any price representation with a checked conversion, such as fixed-point
// decimals or money amounts.
func NewWithCodec[T any](seed int64, codec price.Codec[T]) *Generator[T] {
	return NewFromRNG[T](rng.NewNormalRNG(seed), codec)
}

// NewFromRNG returns a generator drawing standard normal deviates from r
func NewFromRNG[T any](r rng.RNG, codec price.Codec[T]) *Generator[T] {
	return &Generator[T]{
		rng:   r,
		codec: codec,
	}
}

// Path generates steps+1 prices starting at initial.  Element 0 is initial unchanged and every later price derives
// from its predecessor.  Generation is all or nothing: on a parameter error, a degenerate draw, a failed conversion
// or a nonzero price underflowing to zero, no prices are returned.
//
// With integer price types, rounding can produce an exact 0 for very small prices with high volatility; once a price
// is 0 the rest of the path stays 0.
func (g *Generator[T]) Path(initial T, p Params) ([]T, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	path := make([]T, p.Steps+1)
	path[0] = initial
	if p.Steps == 0 {
		return path, nil
	}

	dt := p.Years / float64(p.Steps)
	driftTerm := (p.Drift - 0.5*p.Volatility*p.Volatility) * dt
	volTerm := p.Volatility * math.Sqrt(dt)

	for i := 1; i <= p.Steps; i++ {
		z := g.rng.Rand()
		if math.IsNaN(z) || math.IsInf(z, 0) {
			return nil, &DegenerateDrawError{Step: i, Value: z}
		}
		prev := g.codec.Float(path[i-1])
		next := prev * math.Exp(driftTerm+volTerm*z)
		if next == 0 && prev != 0 {
			return nil, &StepError{Step: i, err: price.Underflow(prev, fmt.Sprintf("%T", path[i-1]))}
		}
		v, err := g.codec.FromFloat(next)
		if err != nil {
			return nil, &StepError{Step: i, err: err}
		}
		path[i] = v
	}

	if glog.V(2) {
		glog.Infof("gbm: generated %d steps drift=%g volatility=%g years=%g final=%g", p.Steps, p.Drift, p.Volatility, p.Years, g.codec.Float(path[p.Steps]))
	}
	return path, nil
}

// Floats widens a path into float64 using the generator's codec, e.g. to estimate parameters of an integer or
// fixed-point path with the stat package.
func (g *Generator[T]) Floats(path []T) []float64 {
	out := make([]float64, len(path))
	for i, v := range path {
		out[i] = g.codec.Float(v)
	}
	return out
}
