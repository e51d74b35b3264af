// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about distance computations, cache operations, and matrix
// runs.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDistanceHooks(&myDistanceHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Distance().OnDistanceStart(metric, genes)
//	// ... compute ...
//	observability.Distance().OnDistanceComplete(metric, genes, d, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Distance Hooks
// =============================================================================

// DistanceHooks receives events from distance computations. Distance queries
// are pure functions with no cancellation, so these hooks carry no context.
type DistanceHooks interface {
	// OnDistanceStart records the start of a single pairwise query.
	OnDistanceStart(metric string, genes int)

	// OnDistanceComplete records the result of a pairwise query.
	OnDistanceComplete(metric string, genes int, distance int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// Matrix Hooks
// =============================================================================

// MatrixHooks receives events from pairwise matrix runs.
type MatrixHooks interface {
	// OnRunStart records the start of a matrix run over n genomes.
	OnRunStart(ctx context.Context, runID string, genomes int)

	// OnPairComplete records one finished cell of the matrix.
	OnPairComplete(ctx context.Context, runID string, i, j, distance int, err error)

	// OnRunComplete records the end of a matrix run.
	OnRunComplete(ctx context.Context, runID string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDistanceHooks is a no-op implementation of DistanceHooks.
type NoopDistanceHooks struct{}

func (NoopDistanceHooks) OnDistanceStart(string, int)                               {}
func (NoopDistanceHooks) OnDistanceComplete(string, int, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopMatrixHooks is a no-op implementation of MatrixHooks.
type NoopMatrixHooks struct{}

func (NoopMatrixHooks) OnRunStart(context.Context, string, int)                      {}
func (NoopMatrixHooks) OnPairComplete(context.Context, string, int, int, int, error) {}
func (NoopMatrixHooks) OnRunComplete(context.Context, string, time.Duration, error)  {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	distanceHooks DistanceHooks = NoopDistanceHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	matrixHooks   MatrixHooks   = NoopMatrixHooks{}
	hooksMu       sync.RWMutex
)

// SetDistanceHooks registers custom distance hooks.
// This should be called once at application startup before any queries.
func SetDistanceHooks(h DistanceHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		distanceHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetMatrixHooks registers custom matrix hooks.
// This should be called once at application startup before any matrix runs.
func SetMatrixHooks(h MatrixHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		matrixHooks = h
	}
}

// Distance returns the registered distance hooks.
func Distance() DistanceHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return distanceHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Matrix returns the registered matrix hooks.
func Matrix() MatrixHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return matrixHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	distanceHooks = NoopDistanceHooks{}
	cacheHooks = NoopCacheHooks{}
	matrixHooks = NoopMatrixHooks{}
}
