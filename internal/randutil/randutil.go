// Package randutil provides the shared *rand.Rand option-plumbing pattern
// used by every stochastic component of this module (hill climbing's
// sampling random walks, the random variable-order finder). It mirrors
// github.com/katalvlaran/lvlath/builder's WithSeed/WithRand convention:
// callers either hand in their own *rand.Rand for determinism, or Resolve
// creates a fresh source seeded with 1.
package randutil

import "math/rand"

// Source is a functional option for components that need randomness.
type Source func(*Config)

// Config holds the resolved random source for a stochastic component.
type Config struct {
	Rand *rand.Rand
}

// WithSeed seeds a fresh *rand.Rand deterministically.
func WithSeed(seed int64) Source {
	return func(c *Config) { c.Rand = rand.New(rand.NewSource(seed)) }
}

// WithRand injects a caller-owned *rand.Rand, e.g. to share one generator
// across several components for end-to-end determinism.
func WithRand(r *rand.Rand) Source {
	return func(c *Config) {
		if r == nil {
			panic("randutil: WithRand requires a non-nil *rand.Rand")
		}
		c.Rand = r
	}
}

// Resolve applies opts over a default Config seeded from seed 1, matching
// lvlath/builder's "always usable without options" default.
func Resolve(opts ...Source) *Config {
	cfg := &Config{Rand: rand.New(rand.NewSource(1))}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
