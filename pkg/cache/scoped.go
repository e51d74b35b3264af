package cache

import "github.com/genedist/genedist/pkg/genome"

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// This lets one shared backend (typically Redis) serve several deployments
// or datasets without key collisions.
//
// Example usage:
//
//	// Dataset-specific keys
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "dataset:drosophila:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PairKey generates a prefixed key for a pairwise distance result.
func (k *ScopedKeyer) PairKey(metric string, a, b genome.Set) string {
	return k.prefix + k.inner.PairKey(metric, a, b)
}

// MatrixKey generates a prefixed key for a full pairwise matrix.
func (k *ScopedKeyer) MatrixKey(metric string, genomes []genome.Set) string {
	return k.prefix + k.inner.MatrixKey(metric, genomes)
}
