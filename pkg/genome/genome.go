// Package genome defines the gene-order data model shared by all distance
// computations.
//
// A genome is modeled as an ordered sequence of chromosomes, and each
// chromosome as an ordered sequence of signed gene identifiers. The sign of
// a gene encodes its strand orientation: +5 and -5 are the same marker read
// in opposite directions. Chromosomes are either linear or circular.
//
// Values of this package are plain data: they are created by a driver (CLI,
// HTTP API, or library consumer), treated as immutable for the duration of a
// distance query, and borrowed read-only by the distance engines.
package genome

import (
	"errors"
	"slices"
)

var (
	// ErrEmptyChromosome is returned by [NewChromosome] when no genes are given.
	// Every chromosome must carry at least one marker.
	ErrEmptyChromosome = errors.New("chromosome must contain at least one gene")

	// ErrZeroGene is returned by [NewChromosome] when a gene identifier is zero.
	// Zero cannot carry an orientation sign and is therefore not a valid marker.
	ErrZeroGene = errors.New("gene identifiers must be nonzero")
)

// Chromosome is an ordered sequence of signed gene identifiers plus a
// topology flag. Within a valid genome the absolute values of all genes are
// unique; [HasDuplicateGenes] checks this across a whole set.
type Chromosome struct {
	Genes    []int `json:"genes" bson:"genes"`
	Circular bool  `json:"circular,omitempty" bson:"circular,omitempty"`
}

// Len returns the number of genes on the chromosome.
func (c Chromosome) Len() int { return len(c.Genes) }

// NewChromosome validates the gene list and returns a chromosome that owns a
// copy of it. Returns ErrEmptyChromosome for an empty list and ErrZeroGene if
// any identifier is zero.
func NewChromosome(genes []int, circular bool) (Chromosome, error) {
	if len(genes) == 0 {
		return Chromosome{}, ErrEmptyChromosome
	}
	for _, g := range genes {
		if g == 0 {
			return Chromosome{}, ErrZeroGene
		}
	}
	return Chromosome{Genes: slices.Clone(genes), Circular: circular}, nil
}

// Set is a multichromosomal genome: an ordered sequence of chromosomes.
// The zero value is an empty genome.
type Set struct {
	Name        string       `json:"name,omitempty" bson:"name,omitempty"`
	Chromosomes []Chromosome `json:"chromosomes" bson:"chromosomes"`
}

// NumChromosomes returns the number of chromosomes in the set.
func (s Set) NumChromosomes() int { return len(s.Chromosomes) }

// GeneCount returns the total number of genes across all chromosomes.
func (s Set) GeneCount() int {
	n := 0
	for _, c := range s.Chromosomes {
		n += len(c.Genes)
	}
	return n
}

// HasCircular reports whether any chromosome in the set is circular.
func (s Set) HasCircular() bool {
	for _, c := range s.Chromosomes {
		if c.Circular {
			return true
		}
	}
	return false
}

// absGenes collects the absolute value of every gene in the set, sorted
// ascending. Both validation checks reduce to scans over this slice.
func (s Set) absGenes() []int {
	genes := make([]int, 0, s.GeneCount())
	for _, c := range s.Chromosomes {
		for _, g := range c.Genes {
			if g < 0 {
				g = -g
			}
			genes = append(genes, g)
		}
	}
	slices.Sort(genes)
	return genes
}

// HasDuplicateGenes reports whether any absolute gene identifier appears more
// than once within the set. The check spans chromosome boundaries and is
// invariant under gene reordering and sign flips.
func HasDuplicateGenes(s Set) bool {
	genes := s.absGenes()
	for i := 1; i < len(genes); i++ {
		if genes[i] == genes[i-1] {
			return true
		}
	}
	return false
}

// ContentsMatch reports whether the multisets of absolute gene identifiers in
// a and b are identical. The check is symmetric: ContentsMatch(a, b) equals
// ContentsMatch(b, a).
func ContentsMatch(a, b Set) bool {
	return slices.Equal(a.absGenes(), b.absGenes())
}
