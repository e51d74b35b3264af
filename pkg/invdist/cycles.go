package invdist

// successor returns the value following v in the identity adjacency
// structure, wrapping the top value back to 1.
func successor(v, size int) int {
	if v == size {
		return 1
	}
	return v + 1
}

// numBreakpoints counts adjacent vertex pairs of the extended permutation
// that are adjacencies in neither direction. Position 1 is checked against
// the left cap separately. A return of 0 means the permutation already has
// the identity adjacency structure.
func numBreakpoints(perm []int) int {
	size := len(perm)
	b := 0
	if perm[1] != 1 {
		b++
	}
	for i := 2; i < size-1; i += 2 {
		pA := perm[i]
		pB := perm[i+1]
		if pB != successor(pA, size) && pA != successor(pB, size) {
			b++
		}
	}
	return b
}

// numCycles decomposes the breakpoint graph into alternating cycles and
// returns their count. Black edges are implicit: each vertex's black partner
// is the other member of its consecutive pair. Grey edges are derived from
// the inverse permutation with a parity-dependent lookahead, leaving -1 on
// vertices whose adjacency is already correct (self loops). Self-loop
// vertices never start or extend a cycle.
func numCycles(ar *arena) int {
	size := ar.size
	perm := ar.perm

	for i := 0; i < size; i++ {
		ar.inverse[perm[i]] = i
		ar.greyEdges[i] = -1
	}

	if j := ar.inverse[1]; j != 1 {
		ar.greyEdges[0] = j
	}
	for i := 1; i < size-1; i += 2 {
		var j1, j2 int
		if v := perm[i]; v < perm[i+1] {
			j1 = ar.inverse[v-1]
			j2 = ar.inverse[v+2]
		} else {
			j1 = ar.inverse[v+1]
			j2 = ar.inverse[v-2]
		}
		if j1 != i-1 {
			ar.greyEdges[i] = j1
		}
		if j2 != i+2 {
			ar.greyEdges[i+1] = j2
		}
	}
	if j := ar.inverse[size-2]; j != size-2 {
		ar.greyEdges[size-1] = j
	}

	for i := 0; i < size; i++ {
		ar.visited[i] = false
	}

	cycles := 0
	for i := 0; i < size; i++ {
		if ar.visited[i] || ar.greyEdges[i] == -1 {
			continue
		}
		ar.cycle[i] = i
		ar.visited[i] = true
		next := i
		for {
			// Black edge to the pair partner, then the grey edge onward.
			if next%2 == 0 {
				next++
			} else {
				next--
			}
			ar.visited[next] = true
			ar.cycle[next] = i
			next = ar.greyEdges[next]
			ar.visited[next] = true
			ar.cycle[next] = i
			if next == i {
				break
			}
		}
		cycles++
	}
	return cycles
}
