package rng

// RNG is a random number generator
type RNG interface {
	Rand() float64
}

// Uniform is a source of uniformly distributed numbers in [0, 1).  *rand.Rand satisfies it.
type Uniform interface {
	Float64() float64
}
