package curriculum

import "math/rand/v2"

// Sample draws count pairwise-distinct topic groups from pool, uniformly
// at random and without replacement (partial Fisher-Yates over a local
// index list). The pool is never mutated and no sampling state survives
// the call, so concurrent requests sample independently.
//
// If count >= len(pool) the entire pool is returned (order unspecified).
func Sample(rng *rand.Rand, pool []TopicGroup, count int) []TopicGroup {
	if count < 0 {
		count = 0
	}
	if count > len(pool) {
		count = len(pool)
	}

	candidates := make([]int, len(pool))
	for i := range candidates {
		candidates[i] = i
	}

	picked := make([]TopicGroup, 0, count)
	for range count {
		j := rng.IntN(len(candidates))
		picked = append(picked, pool[candidates[j]])
		candidates[j] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
	}

	return picked
}
