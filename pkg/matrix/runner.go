package matrix

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/genedist/genedist/pkg/cache"
	"github.com/genedist/genedist/pkg/distance"
	"github.com/genedist/genedist/pkg/genome"
	"github.com/genedist/genedist/pkg/observability"
)

// Runner encapsulates matrix computation with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store run results. Multiple goroutines can safely use the same Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Pair returns the distance between two genomes under the given metric,
// consulting the cache first. Cached values are stored as decimal strings;
// an undecodable entry falls through to recomputation.
func (r *Runner) Pair(ctx context.Context, metric Metric, a, b genome.Set) (int, error) {
	key := r.Keyer.PairKey(string(metric), a, b)

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		if d, err := strconv.Atoi(string(data)); err == nil {
			observability.Cache().OnCacheHit(ctx, "pair")
			return d, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "pair")

	d, err := computePair(metric, a, b)
	if err != nil {
		return 0, err
	}

	data := []byte(strconv.Itoa(d))
	if err := r.Cache.Set(ctx, key, data, cache.TTLPair); err != nil {
		r.Logger.Warn("cache write failed", "key", key, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "pair", len(data))
	}
	return d, nil
}

func computePair(metric Metric, a, b genome.Set) (int, error) {
	switch metric {
	case MetricInversion:
		return distance.InversionDistance(a, b)
	case MetricBreakpoint:
		return distance.BreakpointDistance(a, b), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}
}

// Compute runs the full pairwise matrix over the given genomes.
//
// Finished runs are cached whole under a content-addressed matrix key; a
// repeated query over an unchanged collection returns the cached run without
// touching the workers (Progress is not called in that case).
//
// Pairs of the upper triangle are distributed over opts.Workers goroutines;
// the result is mirrored into a symmetric table with a zero diagonal. The
// first pair error aborts the run (remaining queued pairs are drained but
// their results discarded), as does context cancellation.
func (r *Runner) Compute(ctx context.Context, genomes []genome.Set, opts Options) (*Run, error) {
	if len(genomes) < 2 {
		return nil, ErrTooFewGenomes
	}
	opts.setDefaults(runtime.NumCPU())
	switch opts.Metric {
	case MetricInversion, MetricBreakpoint:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, opts.Metric)
	}

	matrixKey := r.Keyer.MatrixKey(string(opts.Metric), genomes)
	if data, hit, err := r.Cache.Get(ctx, matrixKey); err == nil && hit {
		var cached Run
		if err := json.Unmarshal(data, &cached); err == nil {
			observability.Cache().OnCacheHit(ctx, "matrix")
			// Keys are content-addressed, so the cached run may carry the
			// names of a differently labeled collection. Relabel in order.
			if len(cached.Names) == len(genomes) {
				for i, g := range genomes {
					cached.Names[i] = g.Name
				}
			}
			r.Logger.Debug("matrix cache hit", "run", cached.ID)
			return &cached, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "matrix")

	n := len(genomes)
	run := &Run{
		ID:        uuid.NewString(),
		Metric:    opts.Metric,
		CreatedAt: time.Now().UTC(),
		Names:     make([]string, n),
		Distances: make([][]int, n),
	}
	for i, g := range genomes {
		run.Names[i] = g.Name
		run.Distances[i] = make([]int, n)
	}

	total := n * (n - 1) / 2
	start := time.Now()
	observability.Matrix().OnRunStart(ctx, run.ID, n)
	r.Logger.Info("computing distance matrix",
		"run", run.ID,
		"metric", opts.Metric,
		"genomes", n,
		"pairs", total,
		"workers", opts.Workers)

	type pair struct{ i, j int }
	jobs := make(chan pair)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		done     int
	)
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				d, err := r.Pair(ctx, opts.Metric, genomes[p.i], genomes[p.j])
				observability.Matrix().OnPairComplete(ctx, run.ID, p.i, p.j, d, err)

				mu.Lock()
				if err != nil && firstErr == nil {
					firstErr = fmt.Errorf("%s vs %s: %w", name(genomes[p.i], p.i), name(genomes[p.j], p.j), err)
				}
				run.Distances[p.i][p.j] = d
				run.Distances[p.j][p.i] = d
				done++
				if opts.Progress != nil {
					opts.Progress(done, total)
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			select {
			case jobs <- pair{i, j}:
			case <-ctx.Done():
				break feed
			}
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil && firstErr == nil {
		firstErr = err
	}
	observability.Matrix().OnRunComplete(ctx, run.ID, time.Since(start), firstErr)
	if firstErr != nil {
		return nil, firstErr
	}

	if data, err := json.Marshal(run); err == nil {
		if err := r.Cache.Set(ctx, matrixKey, data, cache.TTLMatrix); err != nil {
			r.Logger.Warn("cache write failed", "key", matrixKey, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "matrix", len(data))
		}
	}

	r.Logger.Info("matrix complete", "run", run.ID, "duration", time.Since(start))
	return run, nil
}

// name labels a genome for error messages, falling back to its index.
func name(g genome.Set, idx int) string {
	if g.Name != "" {
		return g.Name
	}
	return fmt.Sprintf("genome %d", idx)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
