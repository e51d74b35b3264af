package invdist

// hurdleFlag marks the hurdle classification of an unoriented component.
// Flags combine: a wrap-around hurdle carries both hurdle and greatHurdle.
type hurdleFlag uint8

const (
	hurdle hurdleFlag = 1 << iota
	greatHurdle
	superHurdle
)

// component is one connected component of grey edges, identified by the
// smallest vertex index it contains. blocks counts the maximal contiguous
// vertex runs the component occupies; left and right point at the component
// indices of the nearest unoriented neighbors seen during the block scan.
type component struct {
	root     int
	oriented bool
	blocks   int
	flags    hurdleFlag
	left     int
	right    int
}

// arena bundles every scratch buffer one distance query needs. Each semantic
// role has its own buffer; nothing is aliased and nothing survives the query.
// All buffers are sized by the extended permutation length 2n+2.
type arena struct {
	size int

	perm1 []int // genome A: gene value -> vertex index
	perm2 []int // genome B: vertex index -> gene value, offset applied
	perm  []int // composed extended permutation with fixed caps

	inverse   []int  // perm value -> index
	greyEdges []int  // grey-edge partner per vertex, -1 for self loops
	visited   []bool // cycle traversal bookkeeping
	cycle     []int  // cycle root label per vertex

	parent     []int // union-find parent during the component sweep
	rangeEnd   []int // rightmost vertex reached by each cycle root
	compID     []int // component index per vertex, -1 for self loops
	next       []int // linked-list threading of each component's vertices
	stackRoot  []int
	stackRange []int
	oriented   []bool

	components []component
}

// newArena allocates scratch space for an extended permutation of the given
// size. The arena is owned by exactly one distance query.
func newArena(size int) *arena {
	return &arena{
		size:       size,
		perm1:      make([]int, size),
		perm2:      make([]int, size),
		perm:       make([]int, size),
		inverse:    make([]int, size),
		greyEdges:  make([]int, size),
		visited:    make([]bool, size),
		cycle:      make([]int, size),
		parent:     make([]int, size),
		rangeEnd:   make([]int, size),
		compID:     make([]int, size),
		next:       make([]int, size),
		stackRoot:  make([]int, size),
		stackRange: make([]int, size),
		oriented:   make([]bool, size),
		components: make([]component, 0, size),
	}
}
