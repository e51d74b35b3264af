// Package matrix computes pairwise distance matrices over genome
// collections.
//
// A [Runner] fans the upper triangle of the matrix out over a bounded worker
// pool, consulting a [cache.Cache] before computing any pair. Finished runs
// are identified by UUID and can be persisted through a [Store]; the
// mongostore subpackage provides a MongoDB-backed implementation.
package matrix

import (
	"errors"
	"time"
)

// Metric selects the distance function applied to every pair.
type Metric string

const (
	// MetricInversion is the exact reversal distance.
	MetricInversion Metric = "inversion"

	// MetricBreakpoint is the shared-adjacency breakpoint distance.
	MetricBreakpoint Metric = "breakpoint"
)

var (
	// ErrTooFewGenomes is returned by [Runner.Compute] for collections of
	// fewer than two genomes.
	ErrTooFewGenomes = errors.New("matrix requires at least two genomes")

	// ErrUnknownMetric is returned for a Metric this package does not know.
	ErrUnknownMetric = errors.New("unknown distance metric")
)

// Run is one completed pairwise matrix: who was compared, with which metric,
// and the full symmetric distance table. Distances[i][j] is the distance
// between the i-th and j-th genome; the diagonal is zero.
type Run struct {
	ID        string    `json:"id" bson:"_id"`
	Metric    Metric    `json:"metric" bson:"metric"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	Names     []string  `json:"names" bson:"names"`
	Distances [][]int   `json:"distances" bson:"distances"`
}

// Options configures one matrix run.
type Options struct {
	// Metric selects the distance function. Defaults to MetricInversion.
	Metric Metric

	// Workers bounds the number of concurrent pair computations.
	// Defaults to runtime.NumCPU().
	Workers int

	// Progress, if set, is called after every finished pair with the number
	// of pairs done and the total. Calls are serialized.
	Progress func(done, total int)
}

func (o *Options) setDefaults(numCPU int) {
	if o.Metric == "" {
		o.Metric = MetricInversion
	}
	if o.Workers <= 0 {
		o.Workers = numCPU
	}
}
