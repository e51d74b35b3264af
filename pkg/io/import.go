package io

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/genedist/genedist/pkg/genome"
)

var (
	// ErrMissingHeader is returned when chromosome data appears before any
	// `>name` genome header.
	ErrMissingHeader = errors.New("chromosome data before genome header")

	// ErrMissingTerminator is returned when a chromosome line does not end
	// with `$` (linear) or `@` (circular).
	ErrMissingTerminator = errors.New("chromosome line missing $ or @ terminator")
)

// ReadText decodes genomes in marker-order notation from r.
//
// Each genome starts with a `>name` header line. Each subsequent non-blank,
// non-comment line is one chromosome: whitespace-separated signed integers
// closed by `$` for linear or `@` for circular. See the package documentation
// for a complete example.
//
// ReadText returns an error if a chromosome appears before any header, lacks
// a terminator, contains a non-integer or zero token, or is empty. Errors
// are wrapped with the one-based line number. ReadText does not close r.
func ReadText(r io.Reader) ([]genome.Set, error) {
	var (
		genomes []genome.Set
		current *genome.Set
	)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, ">") {
			if current != nil {
				genomes = append(genomes, *current)
			}
			current = &genome.Set{Name: strings.TrimSpace(line[1:])}
			continue
		}

		if current == nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrMissingHeader)
		}
		c, err := parseChromosomeLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		current.Chromosomes = append(current.Chromosomes, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if current != nil {
		genomes = append(genomes, *current)
	}
	return genomes, nil
}

// parseChromosomeLine parses one terminated chromosome line.
func parseChromosomeLine(line string) (genome.Chromosome, error) {
	fields := strings.Fields(line)
	last := fields[len(fields)-1]

	var circular bool
	switch last {
	case "$":
		circular = false
	case "@":
		circular = true
	default:
		return genome.Chromosome{}, ErrMissingTerminator
	}
	fields = fields[:len(fields)-1]

	genes := make([]int, len(fields))
	for i, f := range fields {
		g, err := strconv.Atoi(f)
		if err != nil {
			return genome.Chromosome{}, fmt.Errorf("gene %q: %w", f, err)
		}
		genes[i] = g
	}
	return genome.NewChromosome(genes, circular)
}

// ImportText reads a marker-order text file at path.
//
// ImportText opens the file, decodes it using [ReadText], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportText(path string) ([]genome.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadText(f)
}

// ReadJSON decodes a JSON array of genomes from r.
//
// The input must be an array of objects with a "chromosomes" array and an
// optional "name". Every chromosome is revalidated through
// [genome.NewChromosome], so a hand-written file with an empty gene list or
// a zero identifier is rejected with the genome's index and name in the
// error. ReadJSON does not close r.
func ReadJSON(r io.Reader) ([]genome.Set, error) {
	var genomes []genome.Set
	if err := json.NewDecoder(r).Decode(&genomes); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	for i, s := range genomes {
		for j, c := range s.Chromosomes {
			valid, err := genome.NewChromosome(c.Genes, c.Circular)
			if err != nil {
				return nil, fmt.Errorf("genome %d (%s) chromosome %d: %w", i, s.Name, j, err)
			}
			genomes[i].Chromosomes[j] = valid
		}
	}
	return genomes, nil
}

// ImportJSON reads a JSON genome file at path.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) ([]genome.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
