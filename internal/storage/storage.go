// Package storage defines the Publisher interface a parse job uses to
// durably publish its two output relations. The GUI, the log
// registry, and the columnar storage engine this repository's spec
// assumes live elsewhere; Publisher is the seam between them and the
// mining core, with an in-memory and a SQLite-backed default
// implementation provided here so the core is exercisable end to end.
package storage

import (
	"errors"

	"github.com/logtt/logtt/internal/materializer"
)

// ErrOutputConflict mirrors miner.ErrOutputConflict for the storage
// layer: a publish was attempted against table names that already
// exist and the caller didn't ask for overwrite.
var ErrOutputConflict = errors.New("output relation already exists")

// Relations is the atomic unit a Publisher writes: both the structured
// and the templates relation for one completed parse job, published
// together or not at all.
type Relations struct {
	LogFile         string
	StructuredTable string
	TemplatesTable  string
	Structured      []materializer.StructuredRow
	Templates       []materializer.TemplateRow
}

// Publisher durably stores a completed parse job's two relations.
// Implementations must publish both tables atomically: if a Publish
// call returns an error, neither relation is visible to later reads.
type Publisher interface {
	// Publish writes both relations. If overwrite is false and either
	// table name already holds data from a previous publish, Publish
	// returns ErrOutputConflict and writes nothing.
	Publish(r Relations, overwrite bool) error

	// TableExists reports whether a structured or templates table
	// name is already in use.
	TableExists(name string) bool
}
