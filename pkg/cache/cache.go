// Package cache provides pluggable result caching for distance computations.
//
// Pairwise distances are pure functions of their inputs, so results never
// expire for correctness reasons; TTLs exist only to bound storage. Three
// backends are provided: [FileCache] for CLI usage, [RedisCache] for server
// deployments, and [NullCache] to disable caching.
//
// Keys are derived from the genomes themselves through a [Keyer], so two
// queries over equal gene orders share a cache entry regardless of where the
// data came from.
package cache

import (
	"context"
	"time"

	"github.com/genedist/genedist/pkg/genome"
)

// Default TTLs per key type. Distance results never go stale, so the TTLs
// only bound storage growth on shared backends.
const (
	TTLPair   = 30 * 24 * time.Hour
	TTLMatrix = 7 * 24 * time.Hour
)

// Cache stores opaque byte values under string keys. Implementations must be
// safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss; an error
	// is returned only for backend failures, never for absence.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys from genome data.
type Keyer interface {
	// PairKey generates a key for one pairwise distance result. The key is
	// symmetric in a and b, matching the symmetry of the distance metrics.
	PairKey(metric string, a, b genome.Set) string

	// MatrixKey generates a key for a full pairwise matrix over a genome
	// collection. Order matters: the matrix layout depends on input order.
	MatrixKey(metric string, genomes []genome.Set) string
}

// DefaultKeyer hashes canonical genome content into fixed-length keys.
// Genome names are excluded: two differently named genomes with the same
// gene order are the same query.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard content-addressed keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// PairKey generates a key for a pairwise distance result.
func (k *DefaultKeyer) PairKey(metric string, a, b genome.Set) string {
	ca, cb := canonical(a), canonical(b)
	if cb < ca {
		ca, cb = cb, ca
	}
	return hashKey("pair:"+metric, ca, cb)
}

// MatrixKey generates a key for a full pairwise matrix.
func (k *DefaultKeyer) MatrixKey(metric string, genomes []genome.Set) string {
	parts := make([]any, len(genomes))
	for i, g := range genomes {
		parts[i] = canonical(g)
	}
	return hashKey("matrix:"+metric, parts...)
}

// canonical serializes a genome's gene orders without its name. The exact
// format is irrelevant as long as it is deterministic and injective.
func canonical(s genome.Set) string {
	key := struct {
		Chromosomes []genome.Chromosome `json:"chromosomes"`
	}{Chromosomes: s.Chromosomes}
	return mustJSON(key)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
