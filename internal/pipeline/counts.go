package pipeline

import (
	"errors"
	"fmt"
)

// ErrCountNotRecorded reports that a stage queried an entity bound before the
// stage producing that entity ran. It surfaces mis-ordered wiring at run time
// instead of letting a stage sample ids that do not exist yet.
var ErrCountNotRecorded = errors.New("entity count not recorded")

// Counts tracks how many rows each stage actually emitted. Requested counts
// never determine fan-out sizes (each artist yields a random number of
// albums, each album a random number of songs), so every stage referencing an
// entity by id must take its sampling bound from here.
type Counts struct {
	actual map[string]int
}

func NewCounts() *Counts {
	return &Counts{actual: make(map[string]int)}
}

// Record stores the actual emitted row count for entity. Last write wins;
// stages call it exactly once per entity per run.
func (c *Counts) Record(entity string, n int) {
	c.actual[entity] = n
}

// BoundFor returns the upper sampling bound for ids of entity.
func (c *Counts) BoundFor(entity string) (int, error) {
	n, ok := c.actual[entity]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrCountNotRecorded, entity)
	}
	return n, nil
}

// Snapshot copies the count table for reporting.
func (c *Counts) Snapshot() map[string]int {
	out := make(map[string]int, len(c.actual))
	for k, v := range c.actual {
		out[k] = v
	}
	return out
}
