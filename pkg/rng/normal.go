package rng

import (
	"math"
	"math/rand"
)

var _ RNG = &NormalRNG{}

// NormalRNG generates standard normal N(0,1) random numbers from a uniform source using the Box-Muller transform.
// It owns its uniform source exclusively and is not safe for concurrent use.
type NormalRNG struct {
	u Uniform
}

// Rand returns one standard normal deviate, consuming exactly two uniform draws (u1 then u2).
//
// The transform needs u1 in (0, 1).  The uniform source is expected to exclude 0, but math/rand can in principle
// return exactly 0, in which case ln(u1) is -Inf and the result is not finite (+Inf or NaN).  Callers that cannot
// tolerate that must check the result.
func (r *NormalRNG) Rand() float64 {
	u1 := r.u.Float64()
	u2 := r.u.Float64()
	return math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
}

// NewNormalRNG returns a sampler seeded once with seed.  The same seed always produces the same sequence.
func NewNormalRNG(seed int64) *NormalRNG {
	return &NormalRNG{
		u: rand.New(rand.NewSource(seed)),
	}
}

// NewNormalRNGFrom returns a sampler drawing from an existing uniform source
func NewNormalRNGFrom(u Uniform) *NormalRNG {
	return &NormalRNG{u: u}
}
