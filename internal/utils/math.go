package utils

import "math/rand"

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	return randomInt(rand.Intn, rand.Uint64, min, max) //nolint:gosec // Game logic randomness, not security critical
}

// RandomIntFrom is RandomInt drawing from the given source.
// A nil source falls back to the shared generator.
func RandomIntFrom(r *rand.Rand, min, max int) int {
	if r == nil {
		return RandomInt(min, max)
	}
	return randomInt(r.Intn, r.Uint64, min, max)
}

func randomInt(intn func(int) int, next func() uint64, min, max int) int {
	if min >= max {
		return min
	}
	if span := max - min + 1; span > 0 {
		return intn(span) + min
	}
	// span overflows int: the range covers more than half of it, so
	// rejection sampling ends within two draws on average
	for {
		if v := int(next()); v >= min && v <= max {
			return v
		}
	}
}

// MaxInt returns the larger of a and b
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
