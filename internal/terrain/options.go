package terrain

import (
	"math/rand/v2"

	"go.uber.org/zap"
)

// Fault-line defaults.
const (
	DefaultIterations = 400
	DefaultDelta      = 0.004
)

// Rand is the random source used by the fault-line generator.
// Float64 must return values in [0, 1). *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

type options struct {
	iterations int
	delta      float32
	rng        Rand
	log        *zap.Logger
}

// Option configures New.
type Option func(*options)

// WithIterations sets the number of fault-line passes. Zero yields a flat plane.
func WithIterations(n int) Option {
	return func(o *options) { o.iterations = n }
}

// WithDelta sets the height step applied on each side of a fault line.
func WithDelta(d float32) Option {
	return func(o *options) { o.delta = d }
}

// WithRand injects the random source for fault-line draws.
func WithRand(r Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithSeed uses a deterministic PCG source seeded with seed.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithLogger sets the logger for stage diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func defaultOptions() options {
	return options{
		iterations: DefaultIterations,
		delta:      DefaultDelta,
		log:        zap.NewNop(),
	}
}
