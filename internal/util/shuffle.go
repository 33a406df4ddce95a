package util

import "math/rand"

// Shuffle returns a new slice with the elements of in permuted uniformly at
// random (Fisher-Yates). The input is left unmodified and every call draws
// fresh randomness.
func Shuffle[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	for i := len(out) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
