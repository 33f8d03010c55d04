// Package randutil holds the seedable random primitives shared by every
// generation stage.
package randutil

import (
	"math/rand"
	"sort"
)

// NewSource returns the run's random source. Seed 0 derives one from nowNano
// so unseeded runs differ while seeded runs reproduce exactly.
func NewSource(seed, nowNano int64) *rand.Rand {
	if seed == 0 {
		seed = nowNano
	}
	return rand.New(rand.NewSource(seed))
}

// SampleUnique draws want distinct integers uniformly from [1, bound],
// clamped to bound when want exceeds it. A non-positive bound yields nil.
// Sparse requests use rejection sampling; once want is a large fraction of
// bound it switches to a partial shuffle so termination never depends on
// luck. The result is ascending so output is stable for a fixed seed.
func SampleUnique(r *rand.Rand, want, bound int) []int {
	if bound <= 0 || want <= 0 {
		return nil
	}
	if want > bound {
		want = bound
	}

	if want*2 >= bound {
		ids := r.Perm(bound)[:want]
		for i := range ids {
			ids[i]++
		}
		sort.Ints(ids)
		return ids
	}

	seen := make(map[int]struct{}, want)
	out := make([]int, 0, want)
	for len(out) < want {
		id := r.Intn(bound) + 1
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// WeightedIndex draws an index from the categorical distribution described
// by weights. Non-positive totals degrade to a uniform draw.
func WeightedIndex(r *rand.Rand, weights []float64) int {
	if len(weights) == 0 {
		return 0
	}
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return r.Intn(len(weights))
	}
	x := r.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		x -= w
		if x < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// Choice returns one element of items picked uniformly.
func Choice[T any](r *rand.Rand, items []T) T {
	return items[r.Intn(len(items))]
}

// IntBetween returns a uniform integer in [lo, hi] inclusive.
func IntBetween(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
