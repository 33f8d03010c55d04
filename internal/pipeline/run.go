package pipeline

import (
	"math/rand"
	"time"
)

// Run carries all per-run mutable state: the count table, the random source,
// the run timestamp and the sequence counters. Stages receive it instead of
// touching globals, so test runs never interfere with each other.
type Run struct {
	Counts *Counts
	Rand   *rand.Rand
	Now    time.Time

	seq map[string]int
}

func NewRun(r *rand.Rand, now time.Time) *Run {
	return &Run{
		Counts: NewCounts(),
		Rand:   r,
		Now:    now.UTC(),
		seq:    make(map[string]int),
	}
}

// NextID returns the next sequential id for entity, starting at 1.
func (r *Run) NextID(entity string) int {
	r.seq[entity]++
	return r.seq[entity]
}
