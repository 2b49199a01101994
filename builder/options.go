package builder

import (
	"fmt"
	"math/rand"
)

// DefaultSeed seeds the RNG when neither WithSeed nor WithRand is given.
const DefaultSeed int64 = 1

// config is resolved from Options before generation starts.
type config struct {
	rng      *rand.Rand
	weightFn WeightFn
}

func newConfig(opts []Option) config {
	c := config{
		rng:      rand.New(rand.NewSource(DefaultSeed)),
		weightFn: DefaultWeightFn,
	}
	var opt Option
	for _, opt = range opts {
		opt(&c)
	}

	return c
}

// Option customises a constructor.
type Option func(*config)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed seeds a fresh RNG for reproducible output.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *config) {
		c.weightFn = fn
	}
}

// WithConstantWeight gives every edge weight w. Panics unless w ≥ 1.
func WithConstantWeight(w int64) Option {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws weights uniformly from [min, max].
// Panics unless 1 ≤ min ≤ max.
func WithUniformWeight(min, max int64) Option {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WeightFn produces one edge weight. It must return a value ≥ 1 and be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns 1.
func DefaultWeightFn(_ *rand.Rand) int64 { return 1 }

// ConstantWeightFn returns a WeightFn that always yields w. Panics unless w ≥ 1.
func ConstantWeightFn(w int64) WeightFn {
	if w < 1 {
		panic(fmt.Sprintf("builder: ConstantWeightFn(%d): weight must be ≥ 1", w))
	}
	return func(_ *rand.Rand) int64 {
		return w
	}
}

// UniformWeightFn returns a WeightFn sampling [min, max] inclusive.
// Panics unless 1 ≤ min ≤ max.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("builder: UniformWeightFn(%d, %d): require 1 ≤ min ≤ max", min, max))
	}
	span := max - min + 1
	return func(rng *rand.Rand) int64 {
		return min + rng.Int63n(span)
	}
}
