package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/genedist/genedist/pkg/distance"
	"github.com/genedist/genedist/pkg/genome"
)

// loadPair resolves the two genomes of a pairwise command: either one file
// holding at least two genomes (the first two are compared) or two files
// (the first genome of each).
func loadPair(args []string) (a, b genome.Set, err error) {
	switch len(args) {
	case 1:
		genomes, err := loadGenomes(args[0])
		if err != nil {
			return a, b, err
		}
		if len(genomes) < 2 {
			return a, b, fmt.Errorf("%s: need at least two genomes, found %d", args[0], len(genomes))
		}
		return genomes[0], genomes[1], nil
	case 2:
		first, err := loadGenomes(args[0])
		if err != nil {
			return a, b, err
		}
		second, err := loadGenomes(args[1])
		if err != nil {
			return a, b, err
		}
		if len(first) == 0 || len(second) == 0 {
			return a, b, errors.New("each input file must hold at least one genome")
		}
		return first[0], second[0], nil
	default:
		return a, b, errors.New("expected one or two input files")
	}
}

// inversionCommand creates the inversion distance command.
func (c *CLI) inversionCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inversion FILE [FILE]",
		Short: "Compute the exact reversal distance between two genomes",
		Long: `Compute the minimum number of segment reversals transforming one genome
into the other. With one FILE, the first two genomes in it are compared;
with two, the first genome of each file.

Both genomes must be single chromosomes over the same gene set. Circular
chromosomes are aligned by rotation first.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := loadPair(args)
			if err != nil {
				return err
			}

			d, err := distance.InversionDistance(a, b)
			if err != nil {
				return describeDistanceError(err)
			}

			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(map[string]any{
					"metric": "inversion", "distance": d,
				})
			}
			printDistance("inversion", d)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the result as JSON")
	return cmd
}

// breakpointCommand creates the breakpoint distance command.
func (c *CLI) breakpointCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "breakpoint FILE [FILE]",
		Short: "Compute the breakpoint distance between two genomes",
		Long: `Count the chromosome boundaries not conserved between two genomes.
Unlike inversion distance, the genomes may be multichromosomal, circular,
and differ in gene content.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := loadPair(args)
			if err != nil {
				return err
			}

			d := distance.BreakpointDistance(a, b)
			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(map[string]any{
					"metric": "breakpoint", "distance": d,
				})
			}
			printDistance("breakpoint", d)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the result as JSON")
	return cmd
}

// adjacenciesCommand creates the shared-adjacencies command.
func (c *CLI) adjacenciesCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "adjacencies FILE [FILE]",
		Short: "List gene adjacencies conserved between two genomes",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := loadPair(args)
			if err != nil {
				return err
			}

			adj := distance.Adjacencies(a, b)
			if asJSON {
				if adj == nil {
					adj = []distance.Adjacency{}
				}
				return json.NewEncoder(os.Stdout).Encode(adj)
			}

			if len(adj) == 0 {
				printInfo("No shared adjacencies")
				return nil
			}
			printSuccess("%d shared adjacencies", len(adj))
			for _, p := range adj {
				printDetail("(%d, %d)", p.Left, p.Right)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the result as JSON")
	return cmd
}

// describeDistanceError adds a hint for the common validation failures.
func describeDistanceError(err error) error {
	switch {
	case errors.Is(err, distance.ErrContentMismatch):
		return fmt.Errorf("%w (inversion distance requires identical gene sets; use breakpoint for differing content)", err)
	case errors.Is(err, distance.ErrNotImplemented):
		return fmt.Errorf("%w (inversion distance handles single chromosomes only)", err)
	default:
		return err
	}
}
