package rng

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand/v2"
)

// Source produces the uniform draws the outcome engine needs. Injecting it
// keeps spin resolution deterministic under a fixed seed.
type Source interface {
	// IntN returns a uniform int in [0, n). n must be positive.
	IntN(n int) int
	// Percent returns a uniform float64 in [0, 100).
	Percent() float64
}

const percentRange = 1 << 53

// cryptoSource draws from crypto/rand.
type cryptoSource struct{}

// NewCrypto returns the default production source, backed by crypto/rand.
func NewCrypto() Source {
	return cryptoSource{}
}

func (cryptoSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

func (c cryptoSource) Percent() float64 {
	return float64(c.IntN(percentRange)) / percentRange * 100
}

// seededSource wraps math/rand/v2 for reproducible draws in tests and
// simulations.
type seededSource struct {
	r *mathrand.Rand
}

func NewSeeded(seed uint64) Source {
	return &seededSource{r: mathrand.New(mathrand.NewPCG(seed, seed))}
}

func (s *seededSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}

func (s *seededSource) Percent() float64 {
	return s.r.Float64() * 100
}
