package curriculum

import (
	"math/rand/v2"
	"sync"
	"testing"
)

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func TestSampleDistinct(t *testing.T) {
	pool := Syllabus()

	for count := 0; count <= len(pool); count++ {
		got := Sample(testRand(uint64(count)+1), pool, count)
		if len(got) != count {
			t.Fatalf("Sample(pool, %d) returned %d groups", count, len(got))
		}

		seen := make(map[string]bool, len(got))
		for _, g := range got {
			if seen[g.Concept] {
				t.Errorf("Sample(pool, %d) picked %q twice", count, g.Concept)
			}
			seen[g.Concept] = true
		}
	}
}

func TestSampleMembersOfPool(t *testing.T) {
	pool := Syllabus()
	inPool := make(map[string]bool, len(pool))
	for _, g := range pool {
		inPool[g.Concept] = true
	}

	got := Sample(testRand(7), pool, 3)
	for _, g := range got {
		if !inPool[g.Concept] {
			t.Errorf("sampled group %q is not in the pool", g.Concept)
		}
	}
}

func TestSampleCountExceedsPool(t *testing.T) {
	pool := Syllabus()

	got := Sample(testRand(1), pool, len(pool)+5)
	if len(got) != len(pool) {
		t.Fatalf("Sample(pool, n+5) returned %d groups, want %d", len(got), len(pool))
	}

	seen := make(map[string]bool, len(got))
	for _, g := range got {
		if seen[g.Concept] {
			t.Errorf("group %q returned twice", g.Concept)
		}
		seen[g.Concept] = true
	}
}

func TestSampleDoesNotMutatePool(t *testing.T) {
	pool := Syllabus()
	before := make([]string, len(pool))
	for i, g := range pool {
		before[i] = g.Concept
	}

	Sample(testRand(3), pool, len(pool))

	for i, g := range pool {
		if g.Concept != before[i] {
			t.Fatalf("pool[%d] changed from %q to %q", i, before[i], g.Concept)
		}
	}
}

// Uniformity smoke test: over many draws of a single group, every
// position should be picked with roughly equal frequency, not biased
// toward earlier indices.
func TestSampleUniform(t *testing.T) {
	pool := Syllabus()
	rng := testRand(42)
	const draws = 7000

	counts := make(map[string]int, len(pool))
	for range draws {
		got := Sample(rng, pool, 1)
		counts[got[0].Concept]++
	}

	expected := draws / len(pool)
	for _, g := range pool {
		c := counts[g.Concept]
		if c < expected/2 || c > expected*2 {
			t.Errorf("group %q drawn %d times, expected around %d", g.Concept, c, expected)
		}
	}
}

func TestSampleConcurrent(t *testing.T) {
	pool := Syllabus()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rng := testRand(uint64(i) + 100)
			for range 200 {
				got := Sample(rng, pool, 3)
				seen := make(map[string]bool, 3)
				for _, g := range got {
					if seen[g.Concept] {
						t.Errorf("concurrent sample picked %q twice", g.Concept)
					}
					seen[g.Concept] = true
				}
			}
		}()
	}
	wg.Wait()
}
