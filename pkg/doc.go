// Package pkg provides the core libraries for genedist genome comparison.
//
// # Overview
//
// Genedist computes rearrangement distances between signed gene-order
// genomes. The pkg directory is organized into five main areas:
//
//  1. [genome] - Domain types (gene sequences, chromosomes, genome sets)
//  2. [distance] - Distance dispatch (inversion, breakpoint, adjacencies)
//  3. [invdist] - Hannenhalli-Pevzner inversion distance engine
//  4. [matrix] - Pairwise distance matrices with worker pools and run storage
//  5. [cache] and [io] - Infrastructure (result caching, genome file formats)
//
// # Architecture
//
// The typical data flow through genedist:
//
//	Genome files (text or JSON)
//	         ↓
//	    [io] package (parse + validate)
//	         ↓
//	    [distance] package (strategy selection + normalization)
//	         ↓
//	    [invdist] package (breakpoint graph analysis)
//	         ↓
//	    distance values / matrix runs
//
// # Quick Start
//
// Compute the inversion distance between two genomes:
//
//	import (
//	    "github.com/genedist/genedist/pkg/distance"
//	    "github.com/genedist/genedist/pkg/genome"
//	)
//
//	a := genome.Set{Name: "a", Chromosomes: []genome.Chromosome{ch1}}
//	b := genome.Set{Name: "b", Chromosomes: []genome.Chromosome{ch2}}
//	d, err := distance.InversionDistance(a, b)
//
// Compute a full pairwise matrix with caching:
//
//	import "github.com/genedist/genedist/pkg/matrix"
//
//	runner := matrix.NewRunner(fileCache, nil, logger)
//	run, err := runner.Compute(ctx, genomes, matrix.Options{Metric: matrix.MetricInversion})
package pkg
