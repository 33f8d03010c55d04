package randutil

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleUniqueWithinBound(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for range 50 {
		got := SampleUnique(r, 5, 100)
		assert.Len(t, got, 5)
		assert.True(t, sort.IntsAreSorted(got))

		seen := map[int]bool{}
		for _, id := range got {
			assert.GreaterOrEqual(t, id, 1)
			assert.LessOrEqual(t, id, 100)
			assert.False(t, seen[id], "duplicate id %d", id)
			seen[id] = true
		}
	}
}

func TestSampleUniqueClampsToBound(t *testing.T) {
	r := rand.New(rand.NewSource(2))

	got := SampleUnique(r, 10, 3)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSampleUniqueDensePath(t *testing.T) {
	r := rand.New(rand.NewSource(3))

	// want*2 >= bound exercises the shuffle path
	got := SampleUnique(r, 60, 100)
	assert.Len(t, got, 60)
	assert.True(t, sort.IntsAreSorted(got))
}

func TestSampleUniqueEmptyInputs(t *testing.T) {
	r := rand.New(rand.NewSource(4))

	assert.Nil(t, SampleUnique(r, 0, 100))
	assert.Nil(t, SampleUnique(r, -1, 100))
	assert.Nil(t, SampleUnique(r, 5, 0))
	assert.Nil(t, SampleUnique(r, 5, -3))
}

func TestWeightedIndexFollowsWeights(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	weights := []float64{0.0, 1.0, 0.0}

	for range 100 {
		assert.Equal(t, 1, WeightedIndex(r, weights))
	}
}

func TestWeightedIndexUniformFallback(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	weights := []float64{0, 0, 0}

	counts := map[int]int{}
	for range 300 {
		i := WeightedIndex(r, weights)
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, 3)
		counts[i]++
	}
	assert.Len(t, counts, 3)
}

func TestIntBetweenInclusive(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	hitLo, hitHi := false, false
	for range 200 {
		v := IntBetween(r, 1, 3)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 3)
		hitLo = hitLo || v == 1
		hitHi = hitHi || v == 3
	}
	assert.True(t, hitLo)
	assert.True(t, hitHi)
}

func TestNewSourceSeedZeroUsesFallback(t *testing.T) {
	a := NewSource(0, 42)
	b := NewSource(0, 42)
	assert.Equal(t, a.Int63(), b.Int63())

	c := NewSource(9, 42)
	d := NewSource(9, 1000)
	assert.Equal(t, c.Int63(), d.Int63())
}
