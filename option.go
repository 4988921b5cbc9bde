package stringy

import (
	"io"
	"math/rand"
)

type Option func(*String)

// WithRand sets the random source that Shuffle draws from. Injecting a
// seeded source makes Shuffle deterministic.
func WithRand(rnd *rand.Rand) Option {
	return func(s *String) {
		s.rand = rnd
	}
}

// WithOutput sets the writer that Say writes to.
func WithOutput(out io.Writer) Option {
	return func(s *String) {
		s.out = out
	}
}
