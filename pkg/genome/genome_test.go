package genome

import "testing"

func linear(genes ...int) Chromosome {
	return Chromosome{Genes: genes}
}

func set(chroms ...Chromosome) Set {
	return Set{Chromosomes: chroms}
}

func TestNewChromosome(t *testing.T) {
	tests := []struct {
		name    string
		genes   []int
		wantErr error
	}{
		{"valid", []int{1, -2, 3}, nil},
		{"empty", nil, ErrEmptyChromosome},
		{"zero gene", []int{1, 0, 2}, ErrZeroGene},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewChromosome(tt.genes, false)
			if err != tt.wantErr {
				t.Errorf("NewChromosome(%v) error = %v, want %v", tt.genes, err, tt.wantErr)
			}
		})
	}
}

func TestNewChromosome_CopiesGenes(t *testing.T) {
	genes := []int{1, 2, 3}
	c, err := NewChromosome(genes, false)
	if err != nil {
		t.Fatalf("NewChromosome() error = %v", err)
	}
	genes[0] = 99
	if c.Genes[0] != 1 {
		t.Errorf("chromosome shares backing array with caller input")
	}
}

func TestHasDuplicateGenes(t *testing.T) {
	tests := []struct {
		name string
		s    Set
		want bool
	}{
		{"no duplicates", set(linear(1, 2, 3)), false},
		{"duplicate within chromosome", set(linear(1, 2, 2, 3)), true},
		{"duplicate across chromosomes", set(linear(1, 2), linear(3, 2)), true},
		{"sign-flipped duplicate", set(linear(1, -2, 2)), true},
		{"empty set", Set{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasDuplicateGenes(tt.s); got != tt.want {
				t.Errorf("HasDuplicateGenes() = %v, want %v", got, tt.want)
			}
		})
	}
}

// The duplicate check must not depend on gene order or orientation.
func TestHasDuplicateGenes_OrderAndSignInvariant(t *testing.T) {
	variants := []Set{
		set(linear(1, 2, 3, 4)),
		set(linear(4, 3, 2, 1)),
		set(linear(-1, 2, -3, 4)),
		set(linear(3, -1, 4, 2)),
	}
	for i, v := range variants {
		if HasDuplicateGenes(v) {
			t.Errorf("variant %d: HasDuplicateGenes() = true, want false", i)
		}
	}
}

func TestContentsMatch(t *testing.T) {
	tests := []struct {
		name string
		a, b Set
		want bool
	}{
		{"identical", set(linear(1, 2, 3)), set(linear(1, 2, 3)), true},
		{"reordered", set(linear(1, 2, 3)), set(linear(3, 1, 2)), true},
		{"sign flipped", set(linear(1, 2, 3)), set(linear(-1, -2, -3)), true},
		{"different gene", set(linear(1, 2, 3)), set(linear(1, 2, 4)), false},
		{"different size", set(linear(1, 2, 3)), set(linear(1, 2)), false},
		{"split across chromosomes", set(linear(1, 2, 3)), set(linear(1), linear(2, 3)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContentsMatch(tt.a, tt.b); got != tt.want {
				t.Errorf("ContentsMatch(a, b) = %v, want %v", got, tt.want)
			}
			if got := ContentsMatch(tt.b, tt.a); got != tt.want {
				t.Errorf("ContentsMatch(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetAccessors(t *testing.T) {
	s := set(linear(1, 2), Chromosome{Genes: []int{3}, Circular: true})
	if got := s.NumChromosomes(); got != 2 {
		t.Errorf("NumChromosomes() = %d, want 2", got)
	}
	if got := s.GeneCount(); got != 3 {
		t.Errorf("GeneCount() = %d, want 3", got)
	}
	if !s.HasCircular() {
		t.Errorf("HasCircular() = false, want true")
	}
}
