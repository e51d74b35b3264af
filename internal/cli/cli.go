// Package cli implements the genedist command-line interface.
//
// This package provides commands for computing inversion and breakpoint
// distances between genomes, building pairwise distance matrices, serving
// the HTTP API, and managing the result cache. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - inversion: Exact reversal distance between two genomes
//   - breakpoint: Breakpoint distance between two genomes
//   - adjacencies: Shared adjacencies between two genomes
//   - matrix: Pairwise distance matrix over a genome file
//   - serve: Run the HTTP API
//   - cache: Manage the result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
//
// # Example
//
//	import "github.com/genedist/genedist/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/genedist/genedist/pkg/buildinfo"
	"github.com/genedist/genedist/pkg/cache"
	"github.com/genedist/genedist/pkg/genome"
	genomeio "github.com/genedist/genedist/pkg/io"
	"github.com/genedist/genedist/pkg/matrix"
)

// appName is the application name used for directories and display.
const appName = "genedist"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and the on-disk
// configuration (defaults when no config file exists).
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: LoadConfigOrDefault(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "genedist",
		Short:        "Genedist computes rearrangement distances between genomes",
		Long:         `Genedist computes genome rearrangement distances from signed gene orders: exact inversion (reversal) distance via Hannenhalli-Pevzner theory, breakpoint distance, and pairwise distance matrices over genome collections.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	var configFile string
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/genedist/config.toml)")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if configFile == "" {
			return nil
		}
		cfg, err := LoadConfig(configFile)
		if err != nil {
			return err
		}
		c.Config = cfg
		return nil
	}

	// Register all subcommands
	root.AddCommand(c.inversionCommand())
	root.AddCommand(c.breakpointCommand())
	root.AddCommand(c.adjacenciesCommand())
	root.AddCommand(c.matrixCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a matrix runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*matrix.Runner, error) {
	store, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return matrix.NewRunner(store, nil, c.Logger), nil
}

// newCache picks the cache backend: none when disabled, Redis when a
// redis_url is configured, local files otherwise.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache || c.Config.NoCache {
		return cache.NewNullCache(), nil
	}
	if c.Config.RedisURL != "" {
		rc, err := cache.NewRedisCache(ctx, c.Config.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return rc, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/genedist/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// loadGenomes reads a genome file, picking the codec by extension:
// .json uses the JSON format, everything else the marker-order text format.
func loadGenomes(path string) ([]genome.Set, error) {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return genomeio.ImportJSON(path)
	}
	return genomeio.ImportText(path)
}
