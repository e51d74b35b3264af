package invdist

// Linear returns the reversal distance between two linear gene orders of
// identical content. Both slices must hold signed permutations of 1..n.
func Linear(a, b []int) int {
	return distance(a, b, 0)
}

// Circular aligns b to a by rotation and returns the reversal distance of
// the aligned orders. Returns ErrOffsetNotFound when no rotation aligns the
// first marker of a with any marker of b.
func Circular(a, b []int) (int, error) {
	offset, err := Offset(a, b)
	if err != nil {
		return 0, err
	}
	return distance(a, b, offset), nil
}

// distance runs the four-stage computation with a fresh arena. The formula
// is breakpoints − cycles + hurdles + fortress.
func distance(a, b []int, offset int) int {
	n := len(a)
	ar := newArena(2*n + 2)

	buildPermutation(ar, a, b, offset)
	breakpoints := numBreakpoints(ar.perm)
	cycles := numCycles(ar)
	hurdles, fortress := hurdlesAndFortress(ar)

	return breakpoints - cycles + hurdles + fortress
}
