package pipeline

import "github.com/eduardoconde-bit/spotify-database/internal/dataset"

// Stage produces the full row set for one or more related tables. A stage
// must record the actual count of every entity it owns on run.Counts before
// returning, and may only sample foreign ids through run.Counts bounds.
type Stage interface {
	Name() string
	Generate(run *Run) ([]dataset.Artifact, error)
}
