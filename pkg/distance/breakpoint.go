package distance

import (
	"time"

	"github.com/genedist/genedist/pkg/genome"
	"github.com/genedist/genedist/pkg/observability"
)

// Adjacency is an ordered pair of signed genes that appear consecutively in
// both genomes, in the same or mirrored orientation. Left and Right carry
// the pair as it occurs in the first genome of the query.
type Adjacency struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// BreakpointDistance counts the chromosome boundaries of the larger genome
// that are not conserved in the other: max(boundaries(a), boundaries(b))
// minus the number of shared adjacencies. Unlike [InversionDistance] it
// accepts multichromosomal and mixed-topology sets, needs no content check,
// and cannot fail. Identical genomes are at distance zero.
func BreakpointDistance(a, b genome.Set) int {
	start := time.Now()
	observability.Distance().OnDistanceStart("breakpoint", a.GeneCount())

	boundsA := countBoundaries(a)
	boundsB := countBoundaries(b)
	shared := 0
	forEachBoundary(a, func(x, y int) {
		if setContainsAdjacency(b, x, y) {
			shared++
		}
	})

	d := max(boundsA, boundsB) - shared
	observability.Distance().OnDistanceComplete("breakpoint", a.GeneCount(), d, time.Since(start), nil)
	return d
}

// Adjacencies returns every boundary of a that is conserved in b, in the
// scan order of a. The pairs reported are a's own: a shared boundary that b
// carries reversed and negated is still reported in a's orientation.
func Adjacencies(a, b genome.Set) []Adjacency {
	var out []Adjacency
	forEachBoundary(a, func(x, y int) {
		if setContainsAdjacency(b, x, y) {
			out = append(out, Adjacency{Left: x, Right: y})
		}
	})
	return out
}

// countBoundaries totals the gene-to-gene boundaries of a set. A linear
// chromosome of k genes has k-1; a circular one closes the wrap boundary
// for k.
func countBoundaries(s genome.Set) int {
	n := 0
	for _, c := range s.Chromosomes {
		n += c.Len() - 1
		if c.Circular {
			n++
		}
	}
	return n
}

// forEachBoundary visits the boundaries of every chromosome in s, wrap
// boundary last for circular chromosomes. A single-gene circular chromosome
// has exactly one boundary, the degenerate (g, g) wrap, matching what
// countBoundaries totals for it.
func forEachBoundary(s genome.Set, visit func(x, y int)) {
	for _, c := range s.Chromosomes {
		for i := 0; i+1 < len(c.Genes); i++ {
			visit(c.Genes[i], c.Genes[i+1])
		}
		if c.Circular && len(c.Genes) > 0 {
			visit(c.Genes[len(c.Genes)-1], c.Genes[0])
		}
	}
}

// setContainsAdjacency reports whether any chromosome of s carries the
// boundary (x, y), either directly or as the reverse complement (-y, -x).
func setContainsAdjacency(s genome.Set, x, y int) bool {
	matches := func(p, q int) bool {
		return (p == x && q == y) || (p == -y && q == -x)
	}
	for _, c := range s.Chromosomes {
		for i := 0; i+1 < len(c.Genes); i++ {
			if matches(c.Genes[i], c.Genes[i+1]) {
				return true
			}
		}
		if c.Circular && len(c.Genes) > 0 && matches(c.Genes[len(c.Genes)-1], c.Genes[0]) {
			return true
		}
	}
	return false
}
