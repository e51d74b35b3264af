package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/genedist/genedist/pkg/genome"
)

// WriteText encodes genomes in marker-order notation and writes them to w.
// The output can be re-imported with [ReadText] for round-trip processing.
func WriteText(genomes []genome.Set, w io.Writer) error {
	var b strings.Builder
	for _, s := range genomes {
		b.WriteString(">")
		b.WriteString(s.Name)
		b.WriteString("\n")
		for _, c := range s.Chromosomes {
			for _, g := range c.Genes {
				b.WriteString(strconv.Itoa(g))
				b.WriteString(" ")
			}
			if c.Circular {
				b.WriteString("@\n")
			} else {
				b.WriteString("$\n")
			}
		}
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportText writes genomes to a marker-order text file at path.
// This is a convenience wrapper around [WriteText] for file-based output.
func ExportText(genomes []genome.Set, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteText(genomes, f)
}

// WriteJSON encodes genomes as an indented JSON array and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(genomes []genome.Set, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(genomes); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes genomes to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(genomes []genome.Set, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(genomes, f)
}
