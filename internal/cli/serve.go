package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/genedist/genedist/internal/server"
	"github.com/genedist/genedist/pkg/cache"
	"github.com/genedist/genedist/pkg/matrix"
	"github.com/genedist/genedist/pkg/matrix/mongostore"
)

// serveCommand creates the HTTP API command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		mongoURI string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve the distance API over HTTP. The cache backend is Redis when
--redis (or redis_url in the config) is set, local files otherwise. Matrix
runs are persisted to MongoDB when --mongo (or mongo.uri) is set, and to
process memory otherwise.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := c.serveCache(ctx, redisURL, noCache)
			if err != nil {
				return err
			}
			runner := matrix.NewRunner(store, nil, c.Logger)
			defer runner.Close()

			runStore, err := c.serveStore(ctx, mongoURI)
			if err != nil {
				return err
			}
			defer runStore.Close(context.Background())

			srv := &http.Server{
				Addr:              addr,
				Handler:           server.New(runner, runStore, c.Logger),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errc := make(chan error, 1)
			go func() {
				c.Logger.Info("listening", "addr", addr)
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
				c.Logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("shutdown: %w", err)
				}
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", c.Config.Server.Addr, "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", c.Config.RedisURL, "redis URL for the result cache")
	cmd.Flags().StringVar(&mongoURI, "mongo", c.Config.Mongo.URI, "mongodb URI for run persistence")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	return cmd
}

// serveCache picks the cache backend for server mode.
func (c *CLI) serveCache(ctx context.Context, redisURL string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisURL != "" {
		rc, err := cache.NewRedisCache(ctx, redisURL)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		c.Logger.Info("cache backend", "kind", "redis")
		return rc, nil
	}
	return c.newCache(ctx, false)
}

// serveStore picks the run store for server mode.
func (c *CLI) serveStore(ctx context.Context, mongoURI string) (matrix.Store, error) {
	if mongoURI == "" {
		c.Logger.Warn("no mongodb configured; matrix runs are kept in memory")
		return matrix.NewMemoryStore(), nil
	}
	store, err := mongostore.New(ctx, mongoURI, c.Config.Mongo.Database)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	c.Logger.Info("run store", "kind", "mongodb", "database", c.Config.Mongo.Database)
	return store, nil
}
