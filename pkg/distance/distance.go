// Package distance is the top-level entry point for genome rearrangement
// distances. It validates gene content, selects the computation strategy for
// the chromosome topology at hand, and routes single-chromosome queries to
// the inversion-distance engine in package invdist.
//
// Three metrics are exposed: [InversionDistance] (exact reversal distance),
// [BreakpointDistance] (shared-adjacency count over multichromosomal sets),
// and [Adjacencies] (the shared boundary pairs themselves, for diagnostics).
//
// Every query is a pure function of its two genome sets; concurrent queries
// share no mutable state.
package distance

import (
	"errors"
	"slices"
	"time"

	"github.com/genedist/genedist/pkg/genome"
	"github.com/genedist/genedist/pkg/invdist"
	"github.com/genedist/genedist/pkg/observability"
)

var (
	// ErrDuplicateGenes is returned by [InversionDistance] when an absolute
	// gene identifier appears more than once within a genome set.
	ErrDuplicateGenes = errors.New("duplicate gene identifiers in genome")

	// ErrContentMismatch is returned by [InversionDistance] when the two
	// genome sets do not share the same multiset of absolute gene ids.
	ErrContentMismatch = errors.New("genomes differ in gene content")

	// ErrOffsetNotFound is returned when circular alignment finds no shared
	// marker to rotate on. It specializes ErrContentMismatch for rotated
	// circular chromosomes.
	ErrOffsetNotFound = invdist.ErrOffsetNotFound

	// ErrNotImplemented is returned for the general multichromosomal case,
	// which requires the double-cut-and-join (DCJ) model. DCJ is an explicit
	// extension point, not a silent fallback.
	ErrNotImplemented = errors.New("multichromosomal DCJ distance not implemented")
)

// strategy names the computation path for a pair of genome sets. It is
// evaluated exactly once per query, before any graph construction.
type strategy int

const (
	strategyLinear strategy = iota
	strategyCircularA
	strategyCircularB
	strategyMultichromosomal
)

// selectStrategy picks the path for the given pair: single linear
// chromosomes use the plain engine, a circular chromosome on either side
// adds rotation alignment and an end-adjacency correction, and everything
// else is the multichromosomal case.
func selectStrategy(a, b genome.Set) strategy {
	if a.NumChromosomes() == 1 && b.NumChromosomes() == 1 {
		switch {
		case a.Chromosomes[0].Circular:
			return strategyCircularA
		case b.Chromosomes[0].Circular:
			return strategyCircularB
		default:
			return strategyLinear
		}
	}
	return strategyMultichromosomal
}

// InversionDistance returns the minimum number of segment reversals
// transforming genome a into genome b, or an error describing why the pair
// cannot be compared. Validation runs before any graph construction; once
// it passes, the engine cannot fail.
//
// Circular chromosomes are aligned by rotation first. Embedding a circular
// chromosome into the linear extended-permutation formalism gains one wrap
// adjacency, so the result is corrected by one for each side whose topology
// differs from the other.
func InversionDistance(a, b genome.Set) (int, error) {
	start := time.Now()
	observability.Distance().OnDistanceStart("inversion", a.GeneCount())

	d, err := inversionDistance(a, b)
	observability.Distance().OnDistanceComplete("inversion", a.GeneCount(), d, time.Since(start), err)
	return d, err
}

func inversionDistance(a, b genome.Set) (int, error) {
	if genome.HasDuplicateGenes(a) || genome.HasDuplicateGenes(b) {
		return 0, ErrDuplicateGenes
	}
	if !genome.ContentsMatch(a, b) {
		return 0, ErrContentMismatch
	}

	switch selectStrategy(a, b) {
	case strategyLinear:
		ga, gb := normalizePair(a.Chromosomes[0], b.Chromosomes[0])
		return invdist.Linear(ga, gb), nil
	case strategyCircularA:
		// Comparison genome is circular: align the reference onto it, then
		// correct unless the reference contributes its own wrap adjacency.
		ga, gb := normalizePair(a.Chromosomes[0], b.Chromosomes[0])
		d, err := invdist.Circular(gb, ga)
		if err != nil {
			return 0, err
		}
		if !b.Chromosomes[0].Circular {
			d++
		}
		return d, nil
	case strategyCircularB:
		ga, gb := normalizePair(a.Chromosomes[0], b.Chromosomes[0])
		d, err := invdist.Circular(ga, gb)
		if err != nil {
			return 0, err
		}
		return d + 1, nil
	default:
		return dcjDistance(a, b)
	}
}

// dcjDistance is the extension point for the double-cut-and-join model
// covering multichromosomal and mixed-topology genomes. The model is not
// implemented; callers receive ErrNotImplemented rather than a guess.
func dcjDistance(a, b genome.Set) (int, error) {
	return 0, ErrNotImplemented
}

// normalizePair relabels both chromosomes' genes onto the signed alphabet
// 1..n, preserving order and orientation. The engine indexes its vertex
// tables by gene value, so arbitrary marker identifiers (say {7, 402, 15})
// must be ranked first. Content equality has been checked by the caller,
// so one ranking covers both sides.
func normalizePair(a, b genome.Chromosome) (ga, gb []int) {
	ranks := make([]int, len(a.Genes))
	for i, g := range a.Genes {
		if g < 0 {
			g = -g
		}
		ranks[i] = g
	}
	slices.Sort(ranks)

	rank := make(map[int]int, len(ranks))
	for i, id := range ranks {
		rank[id] = i + 1
	}

	relabel := func(genes []int) []int {
		out := make([]int, len(genes))
		for i, g := range genes {
			if g < 0 {
				out[i] = -rank[-g]
			} else {
				out[i] = rank[g]
			}
		}
		return out
	}
	return relabel(a.Genes), relabel(b.Genes)
}
