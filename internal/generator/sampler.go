// File: internal/generator/sampler.go
package generator

import "math/rand"

// sampleIndex draws one index in [0, len(weights)) with probability
// proportional to its weight. When the whole vector has collapsed to zero
// (every value persistently penalized) it falls back to a uniform draw over
// all indices; that fallback is designed behavior, not an error path.
func sampleIndex(rng *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return rng.Intn(len(weights))
	}

	r := rng.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if r <= cum {
			return i
		}
	}
	// Floating-point accumulation can leave r a hair above the final sum.
	return len(weights) - 1
}

// sampleIndices draws k independent indices with replacement from the same
// weight distribution. Duplicates are kept; dedup happens downstream.
func sampleIndices(rng *rand.Rand, weights []float64, k int) []int {
	out := make([]int, k)
	for i := range out {
		out[i] = sampleIndex(rng, weights)
	}
	return out
}
