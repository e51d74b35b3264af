package invdist

import "testing"

func TestLinear_Identity(t *testing.T) {
	tests := []struct {
		name  string
		genes []int
	}{
		{"single gene", []int{1}},
		{"short", []int{1, 2, 3}},
		{"with negative strands", []int{1, -2, 3, -4}},
		{"longer", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Linear(tt.genes, tt.genes); got != 0 {
				t.Errorf("Linear(g, g) = %d, want 0", got)
			}
		})
	}
}

func TestLinear_KnownDistances(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{
			name: "single reversal",
			a:    []int{1, 2, 3, 4, 5},
			b:    []int{1, -4, -3, -2, 5},
			want: 1,
		},
		{
			name: "single flipped gene",
			a:    []int{1, 2, 3},
			b:    []int{1, -2, 3},
			want: 1,
		},
		{
			name: "swap of two positive genes",
			a:    []int{1, 2},
			b:    []int{2, 1},
			want: 3,
		},
		{
			name: "one unoriented hurdle",
			a:    []int{1, 2, 3},
			b:    []int{3, 2, 1},
			want: 3,
		},
		{
			name: "great hurdle wrapping both ends",
			a:    []int{1, 2, 3, 4, 5},
			b:    []int{2, 4, 3, 5, 1},
			want: 6,
		},
		{
			name: "three plain hurdles",
			a:    []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13},
			b:    []int{1, 4, 3, 2, 5, 8, 7, 6, 9, 12, 11, 10, 13},
			want: 9,
		},
		{
			name: "fortress of three superhurdles",
			a:    []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18},
			b:    []int{1, 3, 5, 4, 6, 2, 7, 9, 11, 10, 12, 8, 13, 15, 17, 16, 18, 14},
			want: 16,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Linear(tt.a, tt.b); got != tt.want {
				t.Errorf("Linear(a, b) = %d, want %d", got, tt.want)
			}
			if got := Linear(tt.b, tt.a); got != tt.want {
				t.Errorf("Linear(b, a) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		name    string
		a, b    []int
		want    int
		wantErr error
	}{
		{"direct match at start", []int{1, 2, 3}, []int{1, 2, 3}, 0, nil},
		{"direct match rotated", []int{1, 2, 3}, []int{2, 3, 1}, 2, nil},
		{"negated match", []int{1, 2, 3}, []int{-1, -3, -2}, 3, nil},
		{"negated match rotated", []int{1, 2, 3}, []int{3, -1, 2}, 4, nil},
		{"absent marker", []int{9, 2, 3}, []int{1, 2, 3}, 0, ErrOffsetNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Offset(tt.a, tt.b)
			if err != tt.wantErr {
				t.Fatalf("Offset() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Offset() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCircular(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"identical", []int{1, 2, 3}, []int{1, 2, 3}, 0},
		{"rotation only", []int{1, 2, 3}, []int{2, 3, 1}, 0},
		{"reflection only", []int{1, 2, 3}, []int{-1, -3, -2}, 0},
		{"one reversal", []int{1, 2, 3}, []int{1, -3, -2}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Circular(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Circular() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Circular() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCircular_OffsetNotFound(t *testing.T) {
	if _, err := Circular([]int{9, 2, 3}, []int{1, 2, 3}); err != ErrOffsetNotFound {
		t.Errorf("Circular() error = %v, want ErrOffsetNotFound", err)
	}
}

func TestNumBreakpoints(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"identity has none", []int{1, 2, 3, 4}, []int{1, 2, 3, 4}, 0},
		{"one reversal breaks two", []int{1, 2, 3, 4, 5}, []int{1, -4, -3, -2, 5}, 2},
		{"fully reversed positive", []int{1, 2, 3}, []int{3, 2, 1}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := len(tt.a)
			ar := newArena(2*n + 2)
			buildPermutation(ar, tt.a, tt.b, 0)
			if got := numBreakpoints(ar.perm); got != tt.want {
				t.Errorf("numBreakpoints() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNumCycles(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"identity has no grey edges", []int{1, 2, 3}, []int{1, 2, 3}, 0},
		{"one reversal forms one cycle", []int{1, 2, 3, 4, 5}, []int{1, -4, -3, -2, 5}, 1},
		{"fully reversed positive", []int{1, 2, 3}, []int{3, 2, 1}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := len(tt.a)
			ar := newArena(2*n + 2)
			buildPermutation(ar, tt.a, tt.b, 0)
			if got := numCycles(ar); got != tt.want {
				t.Errorf("numCycles() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHurdlesAndFortress(t *testing.T) {
	tests := []struct {
		name         string
		a, b         []int
		wantHurdles  int
		wantFortress int
	}{
		{
			name:         "oriented component is no hurdle",
			a:            []int{1, 2, 3, 4, 5},
			b:            []int{1, -4, -3, -2, 5},
			wantHurdles:  0,
			wantFortress: 0,
		},
		{
			name:         "single hurdle",
			a:            []int{1, 2, 3},
			b:            []int{3, 2, 1},
			wantHurdles:  1,
			wantFortress: 0,
		},
		{
			name:         "great hurdle counts once",
			a:            []int{1, 2, 3, 4, 5},
			b:            []int{2, 4, 3, 5, 1},
			wantHurdles:  2,
			wantFortress: 0,
		},
		{
			name:         "three hurdles without superhurdle shape",
			a:            []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13},
			b:            []int{1, 4, 3, 2, 5, 8, 7, 6, 9, 12, 11, 10, 13},
			wantHurdles:  3,
			wantFortress: 0,
		},
		{
			name:         "odd superhurdles form a fortress",
			a:            []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18},
			b:            []int{1, 3, 5, 4, 6, 2, 7, 9, 11, 10, 12, 8, 13, 15, 17, 16, 18, 14},
			wantHurdles:  3,
			wantFortress: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := len(tt.a)
			ar := newArena(2*n + 2)
			buildPermutation(ar, tt.a, tt.b, 0)
			numCycles(ar)
			hurdles, fortress := hurdlesAndFortress(ar)
			if hurdles != tt.wantHurdles || fortress != tt.wantFortress {
				t.Errorf("hurdlesAndFortress() = (%d, %d), want (%d, %d)",
					hurdles, fortress, tt.wantHurdles, tt.wantFortress)
			}
		})
	}
}

func TestConnectedComponents_SeparatesNestedFromInterleaved(t *testing.T) {
	// Nested unoriented components stay separate; interleaved ones merge.
	nested := []int{2, 4, 3, 5, 1}
	interleaved := []int{3, 2, 1, 6, 5, 4, 9, 8, 7}

	identity := func(n int) []int {
		g := make([]int, n)
		for i := range g {
			g[i] = i + 1
		}
		return g
	}

	ar := newArena(2*len(nested) + 2)
	buildPermutation(ar, identity(len(nested)), nested, 0)
	numCycles(ar)
	if got := connectedComponents(ar); got != 2 {
		t.Errorf("connectedComponents(nested) = %d, want 2", got)
	}

	ar = newArena(2*len(interleaved) + 2)
	buildPermutation(ar, identity(len(interleaved)), interleaved, 0)
	numCycles(ar)
	if got := connectedComponents(ar); got != 1 {
		t.Errorf("connectedComponents(interleaved) = %d, want 1", got)
	}
}
