package testutil

import "math/rand"

// NewRand returns a deterministic source for reproducible reduction and
// alert-roll draws.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
