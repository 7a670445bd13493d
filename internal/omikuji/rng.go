package omikuji

import "math/rand"

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// stdRNG delegates to math/rand (auto-seeded since Go 1.20).
type stdRNG struct{}

func (stdRNG) Intn(n int) int { return rand.Intn(n) }

func pick[T any](rng RNG, items []T) T {
	return items[rng.Intn(len(items))]
}
