package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShuffle_IsPermutation(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	out := Shuffle(in)

	assert.Len(t, out, len(in))
	assert.ElementsMatch(t, in, out)
}

func TestShuffle_DoesNotModifyInput(t *testing.T) {
	in := []string{"a", "b", "c", "d"}
	original := make([]string, len(in))
	copy(original, in)

	out := Shuffle(in)

	assert.Equal(t, original, in, "input must be left unmodified")
	if len(out) > 0 {
		out[0] = "mutated"
		assert.Equal(t, original, in, "output must not alias the input")
	}
}

func TestShuffle_Empty(t *testing.T) {
	assert.Empty(t, Shuffle([]int{}))
	assert.Empty(t, Shuffle[int](nil))
}

func TestShuffle_SingleElement(t *testing.T) {
	assert.Equal(t, []int{42}, Shuffle([]int{42}))
}

func TestShuffle_RealizesAllPermutations(t *testing.T) {
	// With 3 elements there are 6 permutations; 3000 draws make missing one
	// astronomically unlikely under a fair shuffle.
	seen := make(map[[3]int]int)
	for i := 0; i < 3000; i++ {
		out := Shuffle([]int{0, 1, 2})
		seen[[3]int{out[0], out[1], out[2]}]++
	}

	assert.Len(t, seen, 6, "every permutation should occur")
	for perm, count := range seen {
		assert.Greater(t, count, 0, "permutation %v never occurred", perm)
	}
}
