package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/genedist/genedist/pkg/matrix"
	"github.com/genedist/genedist/pkg/matrix/mongostore"
)

// matrixCommand creates the pairwise matrix command.
func (c *CLI) matrixCommand() *cobra.Command {
	var (
		metric  string
		workers int
		output  string
		noCache bool
		noTUI   bool
		save    bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "matrix FILE",
		Short: "Compute a pairwise distance matrix over a genome file",
		Long: `Compute the distance between every pair of genomes in FILE.
Results are cached, so re-runs over overlapping collections only compute
new pairs. With --save and a configured MongoDB, the run is persisted and
can be fetched later through the HTTP API.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			genomes, err := loadGenomes(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := matrix.Options{
				Metric:  matrix.Metric(metric),
				Workers: workers,
			}

			start := time.Now()

			var run *matrix.Run
			if noTUI {
				sp := newSpinnerWithContext(ctx, fmt.Sprintf("computing %d genomes", len(genomes)))
				opts.Progress = func(done, total int) {
					sp.UpdateMessage(fmt.Sprintf("computing pair %d/%d", done, total))
				}
				sp.Start()
				run, err = runner.Compute(ctx, genomes, opts)
				switch {
				case err != nil && sp.Cancelled():
					sp.StopWithError("matrix run cancelled")
				case err != nil:
					sp.StopWithError("matrix run failed")
				default:
					sp.StopWithSuccess(fmt.Sprintf("Computed %dx%d %s matrix (%s)",
						len(genomes), len(genomes), run.Metric, time.Since(start).Round(time.Millisecond)))
				}
			} else {
				run, err = runMatrixTUI(ctx, runner, genomes, opts)
				if err == nil {
					printSuccess("Computed %dx%d %s matrix (%s)",
						len(genomes), len(genomes), run.Metric, time.Since(start).Round(time.Millisecond))
				}
			}
			if err != nil {
				return err
			}

			printKeyValue("run", run.ID)
			printKeyValue("metric", string(run.Metric))

			if save {
				if err := c.saveRun(ctx, run); err != nil {
					printWarning("run not persisted: %v", err)
				} else {
					printDetail("persisted to %s", c.Config.Mongo.URI)
				}
			}

			if output != "" || jsonOut {
				return writeRun(run, output)
			}
			printMatrix(run)
			return nil
		},
	}

	cmd.Flags().StringVarP(&metric, "metric", "m", string(matrix.MetricInversion), "distance metric (inversion|breakpoint)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent pair computations (0 = all CPUs)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the run as JSON to this file")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the run as JSON on stdout instead of a table")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&noTUI, "no-tui", false, "plain spinner instead of the live progress display")
	cmd.Flags().BoolVar(&save, "save", false, "persist the run to MongoDB (requires mongo config)")
	return cmd
}

// saveRun persists a finished run to the configured MongoDB.
func (c *CLI) saveRun(ctx context.Context, run *matrix.Run) error {
	if c.Config.Mongo.URI == "" {
		return fmt.Errorf("no mongo.uri configured")
	}
	store, err := mongostore.New(ctx, c.Config.Mongo.URI, c.Config.Mongo.Database)
	if err != nil {
		return err
	}
	defer store.Close(ctx)
	return store.SaveRun(ctx, run)
}

// writeRun emits the run as indented JSON to path, or stdout when empty.
func writeRun(run *matrix.Run, path string) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(run); err != nil {
		return fmt.Errorf("encode run: %w", err)
	}
	if path != "" {
		printDetail("wrote %s", path)
	}
	return nil
}
