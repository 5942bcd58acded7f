// Package miner defines the common contract every template-mining
// algorithm (Drain, JaccardDrain, Spell, AEL, Brain) implements, plus
// a name-keyed registry mirroring the original parser-factory pattern.
package miner

import (
	"errors"
	"fmt"

	"github.com/logtt/logtt/internal/headerparser"
	"github.com/logtt/logtt/internal/logline"
)

// Sentinel errors for the parse outcomes spec.md §7 names. BadFormatSpec
// is raised by the header parser before a miner ever runs; it is
// re-exported here so callers have one error package to check against.
var (
	ErrBadFormatSpec  = headerparser.ErrBadFormatSpec
	ErrCancelled      = errors.New("parse cancelled")
	ErrOutputConflict = errors.New("output relation already exists")
	ErrIO             = errors.New("i/o error")
)

// ParseResult summarizes a completed parse job.
type ParseResult struct {
	LogFile          string
	LineCount        int
	StructuredTable  string
	TemplatesTable   string
}

// ProgressFunc is invoked periodically (at least every 10,000 lines,
// per spec) to report how far a parse has gotten.
type ProgressFunc func(linesProcessed int)

// ShouldStopFunc is polled at well-defined points in the mining loop;
// returning true aborts the parse with ErrCancelled and no partial
// output is published.
type ShouldStopFunc func() bool

// Miner mines templates from a stream of already tokenized lines and
// returns each line's cluster assignment plus the final clusters;
// internal/materializer builds the structured/templates relations
// from them.
//
// Implementations differ in whether they are online (Drain,
// JaccardDrain, Spell process one line at a time) or batch (AEL, Brain
// need the full per-file line set before they can bin and merge), but
// all of them expose the same entry point.
type Miner interface {
	// Name identifies the algorithm, matching a LogParserConfig's
	// ex_args key and the CLI's --algorithm flag value.
	Name() string

	// Mine consumes every accepted line of one file and returns, for
	// each line in order, the id of the template cluster it was
	// assigned to, plus the final list of clusters. should_stop is
	// polled per spec.md §4.E/§5's cancellation contract.
	Mine(lines []logline.LogLine, shouldStop ShouldStopFunc, progress ProgressFunc) ([]Assignment, []Cluster, error)
}

// Assignment binds one input line to the cluster it matched.
type Assignment struct {
	LineID    int
	ClusterID int
}

// Cluster is a mined template: a fixed integer id, the human-readable
// template string (tokens with variable positions replaced by "<*>"),
// and how many lines matched it. Mask kind sentinels like "<§NUM§>"
// are not further generalized by a cluster's template.
type Cluster struct {
	ID       int
	Template logline.Content
	Count    int
}

// TemplateString renders a cluster's template as space-joined text.
func (c Cluster) TemplateString() string {
	return c.Template.String()
}

// Factory builds a new, independent Miner instance from a decoded
// ex_args map, for one parse job. A fresh instance per job keeps miner
// state worker-local, matching spec.md §5's no-shared-locks design.
type Factory func(exArgs map[string]any) (Miner, error)

var registry = map[string]Factory{}

// Register adds a named miner factory to the registry. Intended to be
// called from each internal/miner/<algorithm> package's init().
func Register(name string, f Factory) {
	registry[name] = f
}

// New builds a Miner by name using the registered factory.
func New(name string, exArgs map[string]any) (Miner, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("miner: unknown algorithm %q: %w", name, ErrBadFormatSpec)
	}
	return f(exArgs)
}

// Names lists every registered algorithm name.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
