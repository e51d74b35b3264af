package invdist

import "errors"

// ErrOffsetNotFound is returned by [Offset] when the first gene of genome A
// appears in genome B under neither orientation. For genomes with matching
// content this cannot happen; it surfaces when rotation alignment is asked
// for mismatched inputs.
var ErrOffsetNotFound = errors.New("no aligning marker found in target genome")

// Offset locates the first gene of a in b and returns the rotation offset
// that aligns the two circular gene orders. A match on the negated gene
// returns index+n, which signals reversed traversal to the permutation
// builder. Returns ErrOffsetNotFound when the marker is absent.
func Offset(a, b []int) (int, error) {
	n := len(b)
	first := a[0]
	for i, g := range b {
		if g == first {
			return i, nil
		}
		if g == -first {
			return i + n, nil
		}
	}
	return 0, ErrOffsetNotFound
}

// buildPermutation fills ar.perm with the extended permutation composed from
// gene orders a and b, reading b rotated by offset. Gene g of a at position i
// becomes the vertex pair 2i+1, 2i+2, stored increasing for positive strand
// and decreasing for negative. An offset of n or more walks b backwards with
// negated signs, aligning the opposite orientation of a rotated circular
// chromosome. Index 0 and 2n+1 are fixed caps.
func buildPermutation(ar *arena, a, b []int, offset int) {
	n := len(a)

	for i, gene := range a {
		g := 2 * gene
		vertex := 2*i + 1
		if g > 0 {
			ar.perm1[g-1] = vertex
			ar.perm1[g] = vertex + 1
		} else {
			ar.perm1[-g] = vertex
			ar.perm1[-g-1] = vertex + 1
		}
	}

	for i := 0; i < n; i++ {
		var g int
		if offset < n {
			g = b[(offset+i)%n]
		} else {
			g = -b[(offset-i)%n]
		}
		vertex := 2*i + 1
		if g > 0 {
			ar.perm2[vertex] = 2*g - 1
			ar.perm2[vertex+1] = 2 * g
		} else {
			ar.perm2[vertex] = -2 * g
			ar.perm2[vertex+1] = -2*g - 1
		}
	}

	ar.perm[0] = 0
	for i := 1; i < ar.size-1; i++ {
		ar.perm[i] = ar.perm1[ar.perm2[i]]
	}
	ar.perm[ar.size-1] = ar.size - 1
}
