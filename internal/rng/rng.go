package rng

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// New returns a seeded generator if seed is non-zero, otherwise a crypto generator
func New(seed int64) Generator {
	if seed != 0 {
		return NewSeeded(seed)
	}

	return Crypto{}
}

// Crypto draws from crypto/rand
type Crypto struct{}

// Intn returns a random number in [0, n)
func (Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// Seeded is a reproducible generator. Not safe for concurrent use.
type Seeded struct {
	r *mathrand.Rand
}

// NewSeeded returns a Seeded generator
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: mathrand.New(mathrand.NewSource(seed))} // nolint:gosec
}

// Intn returns a random number in [0, n)
func (s *Seeded) Intn(n int) int {
	return s.r.Intn(n)
}
