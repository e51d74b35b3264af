// Package io provides text and JSON import and export for genome sets.
//
// # Overview
//
// This package moves gene-order data between files and [genome.Set] values.
// It exists for the drivers (CLI, HTTP API) and for integration with external
// tools; the distance engines themselves consume in-memory sets and never
// touch files.
//
// # Text Format
//
// The text format is a line-oriented marker-order notation. A genome starts
// with a header line naming it; each following line is one chromosome, a
// whitespace-separated list of signed integers closed by a topology marker:
//
//	# comments and blank lines are ignored
//	>human
//	1 -2 3 $
//	4 5 @
//	>mouse
//	1 2 3 $
//	5 4 $
//
// `$` closes a linear chromosome, `@` a circular one. A file may hold any
// number of genomes. The sign of a gene encodes its strand: +5 and -5 are
// the same marker read in opposite directions.
//
// # JSON Format
//
// The JSON format is an array of genome objects mirroring [genome.Set]:
//
//	[
//	  {
//	    "name": "human",
//	    "chromosomes": [
//	      {"genes": [1, -2, 3]},
//	      {"genes": [4, 5], "circular": true}
//	    ]
//	  }
//	]
//
// # Import
//
// Use [ReadText] / [ReadJSON] to decode from any io.Reader, or [ImportText] /
// [ImportJSON] to read a file by path:
//
//	genomes, err := io.ImportText("genomes.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// All import functions validate each chromosome through
// [genome.NewChromosome] and wrap failures with the offending line or genome
// for context. They do not check cross-genome gene content; that is the
// distance dispatcher's job, since content rules depend on the metric.
//
// # Export
//
// [WriteText] / [WriteJSON] encode to any io.Writer, [ExportText] /
// [ExportJSON] write files. Export output round-trips: a written file decodes
// to sets equal to the originals.
package io
