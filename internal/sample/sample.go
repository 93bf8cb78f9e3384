package sample

import (
	"math/rand"
)

// Uniform returns a uniformly distributed integer in [min, max]
// (both inclusive). The range must be non-empty.
func Uniform(rng *rand.Rand, min, max int) int {
	return rng.Intn(max-min+1) + min
}

// NoRepeat draws integers from an inclusive range such that no two
// consecutive draws are ever equal. The range must hold at least two
// distinct values or Next will redraw forever - callers are expected
// to have validated this up front.
type NoRepeat struct {
	min  int
	max  int
	last int

	// drawn is false until the first draw, which has no constraint
	drawn bool
}

// NewNoRepeat returns a no-immediate-repeat sampler over [min, max].
func NewNoRepeat(min, max int) *NoRepeat {
	return &NoRepeat{min: min, max: max}
}

// Next draws the next value, redrawing until it differs from the
// previously returned one.
func (n *NoRepeat) Next(rng *rand.Rand) int {
	for {
		v := Uniform(rng, n.min, n.max)
		if n.drawn && v == n.last {
			continue
		}
		n.last = v
		n.drawn = true
		return v
	}
}
