package invdist

// connectedComponents groups grey edges into connected components with a
// single linear sweep and returns their count. Component indices are written
// to ar.compID per vertex; self-loop vertices get -1. Finalized components
// are appended to ar.components in pop order.
//
// The sweep maintains a stack of active component roots, each with the
// rightmost vertex its grey edges have reached so far. Visiting vertex i
// merges every stack entry whose root exceeds i's cycle root (their ranges
// interleave), extends the merged range, and finalizes the top entry once
// its range no longer reaches past i. This produces the same grouping as
// interval union-find in one pass; ties resolve to the first-seen root.
func connectedComponents(ar *arena) int {
	size := ar.size
	ar.components = ar.components[:0]

	// Cycle roots double as initial union-find parents.
	copy(ar.parent, ar.cycle)

	for i := 0; i < size; i++ {
		if ar.greyEdges[i] == -1 {
			continue
		}
		ar.rangeEnd[ar.cycle[i]] = i
	}

	top := -1
	for i := 0; i < size; i++ {
		if ar.greyEdges[i] == -1 {
			continue
		}
		if ar.parent[i] == i {
			top++
			ar.stackRoot[top] = i
			ar.stackRange[top] = ar.rangeEnd[i]
			continue
		}
		right := i
		for ar.stackRoot[top] > ar.parent[i] {
			// The top component interleaves i's; union it downward.
			ar.parent[ar.stackRoot[top]] = ar.parent[i]
			if right < ar.stackRange[top] {
				right = ar.stackRange[top]
			}
			top--
		}
		if ar.stackRange[top] < right {
			ar.stackRange[top] = right
		}
		if ar.stackRange[top] <= i {
			ar.components = append(ar.components, component{root: ar.stackRoot[top], left: -1, right: -1})
			top--
		}
	}

	// Thread each component's vertices into a list under its root, then
	// label every vertex with its component index.
	for i := 0; i < size; i++ {
		ar.next[i] = -1
	}
	for i := 0; i < size; i++ {
		if ar.greyEdges[i] == -1 {
			ar.compID[i] = -1
		} else if ar.parent[i] != i {
			ar.next[i] = ar.next[ar.parent[i]]
			ar.next[ar.parent[i]] = i
		}
	}
	for idx := range ar.components {
		for p := ar.components[idx].root; p != -1; p = ar.next[p] {
			ar.compID[p] = idx
		}
	}

	return len(ar.components)
}

// hurdlesAndFortress classifies the unoriented components of the breakpoint
// graph and returns the hurdle count and the fortress flag (0 or 1).
//
// A grey edge (i,j) with i<j is oriented iff j-i is even; a component is
// oriented iff it contains any oriented edge. Unoriented components forming
// one contiguous vertex block are hurdles; the component spanning both ends
// of the scan in exactly two blocks is additionally a great hurdle. With
// three or more hurdles, each is tested for the superhurdle shape: its left
// and right neighbor must be the same two-block component that is not itself
// a great hurdle. The first hurdle failing that test stops classification
// with the counts accumulated so far. A fortress needs every hurdle to be a
// superhurdle and their count to be odd.
func hurdlesAndFortress(ar *arena) (numHurdles, numFortress int) {
	size := ar.size

	numComponents := connectedComponents(ar)
	if numComponents == 0 {
		return 0, 0
	}

	for i := 0; i < size; i++ {
		j := ar.greyEdges[i]
		if j == -1 {
			ar.oriented[i] = false
		} else if i < j {
			o := (j-i)%2 == 0
			ar.oriented[i] = o
			ar.oriented[j] = o
		}
	}
	for i := 0; i < size; i++ {
		if ar.oriented[i] {
			ar.components[ar.compID[i]].oriented = true
		}
	}

	numUnoriented := 0
	for i := range ar.components {
		if !ar.components[i].oriented {
			numUnoriented++
		}
	}
	if numUnoriented == 0 {
		return 0, 0
	}

	// Count the contiguous blocks of each unoriented component and link
	// neighboring components as the scan passes them.
	firstComp := -1
	lastComp := -1
	for i := 0; i < size; i++ {
		cIdx := ar.compID[i]
		if cIdx == -1 || ar.components[cIdx].oriented {
			continue
		}
		if cIdx != lastComp {
			if lastComp == -1 {
				firstComp = cIdx
			} else {
				ar.components[lastComp].right = cIdx
				ar.components[cIdx].left = lastComp
			}
			lastComp = cIdx
			ar.components[cIdx].blocks++
		}
	}

	for i := range ar.components {
		if !ar.components[i].oriented && ar.components[i].blocks == 1 {
			ar.components[i].flags = hurdle
			numHurdles++
		}
	}
	if firstComp == lastComp && ar.components[firstComp].blocks == 2 {
		ar.components[firstComp].flags = hurdle | greatHurdle
		numHurdles++
	}

	if numHurdles < 3 {
		return numHurdles, 0
	}

	numSuperhurdles := 0
	for i := range ar.components {
		if ar.components[i].flags == 0 {
			continue
		}
		left, right := ar.components[i].left, ar.components[i].right
		if left != right || left == -1 {
			return numHurdles, 0
		}
		if ar.components[left].blocks != 2 || ar.components[left].flags&greatHurdle != 0 {
			return numHurdles, 0
		}
		ar.components[i].flags |= superHurdle
		numSuperhurdles++
	}

	if numHurdles == numSuperhurdles && numSuperhurdles%2 == 1 {
		numFortress = 1
	}
	return numHurdles, numFortress
}
