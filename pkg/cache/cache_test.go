package cache

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/genedist/genedist/pkg/genome"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "pair:inversion:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("Get before Set should miss")
	}

	// Round trip
	if err := c.Set(ctx, "pair:inversion:abc", []byte("7"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "pair:inversion:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit || !bytes.Equal(data, []byte("7")) {
		t.Errorf("Get = %q hit=%v, want %q hit=true", data, hit, "7")
	}

	// Expired entries behave as misses
	if err := c.Set(ctx, "expiring", []byte("x"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "expiring"); hit {
		t.Error("expired entry should miss")
	}

	// Delete removes, and deleting an absent key is fine
	if err := c.Delete(ctx, "pair:inversion:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "pair:inversion:abc"); hit {
		t.Error("Get after Delete should miss")
	}
	if err := c.Delete(ctx, "pair:inversion:abc"); err != nil {
		t.Errorf("Delete of absent key should not error: %v", err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func testGenome(name string, genes ...int) genome.Set {
	return genome.Set{
		Name:        name,
		Chromosomes: []genome.Chromosome{{Genes: genes}},
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	a := testGenome("a", 1, -2, 3)
	b := testGenome("b", 1, 2, 3)

	// PairKey is symmetric
	if k.PairKey("inversion", a, b) != k.PairKey("inversion", b, a) {
		t.Error("PairKey should be symmetric in its genomes")
	}

	// Names do not affect content-addressed keys
	renamed := testGenome("other", 1, -2, 3)
	if k.PairKey("inversion", a, b) != k.PairKey("inversion", renamed, b) {
		t.Error("PairKey should ignore genome names")
	}

	// Different gene orders produce different keys
	if k.PairKey("inversion", a, b) == k.PairKey("inversion", b, b) {
		t.Error("Different genomes should produce different keys")
	}

	// The metric is part of the key
	if k.PairKey("inversion", a, b) == k.PairKey("breakpoint", a, b) {
		t.Error("Different metrics should produce different keys")
	}

	// MatrixKey is order-sensitive
	if k.MatrixKey("inversion", []genome.Set{a, b}) == k.MatrixKey("inversion", []genome.Set{b, a}) {
		t.Error("MatrixKey should depend on genome order")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "dataset:fly:")

	a := testGenome("a", 1, 2)
	b := testGenome("b", 2, 1)

	key := scoped.PairKey("inversion", a, b)
	if !strings.HasPrefix(key, "dataset:fly:") {
		t.Errorf("ScopedKeyer PairKey should be prefixed: %s", key)
	}
	if key != "dataset:fly:"+inner.PairKey("inversion", a, b) {
		t.Errorf("ScopedKeyer should delegate to inner keyer: %s", key)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	a := testGenome("a", 1, 2)
	key := scoped.PairKey("inversion", a, a)
	if !strings.HasPrefix(key, "prefix:pair:inversion:") {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestRetryableError(t *testing.T) {
	// Retryable(nil) returns nil
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	// Non-nil error is wrapped
	err := Retryable(ErrNetwork)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}

	// Error message is preserved
	if err.Error() != ErrNetwork.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}

	// Non-wrapped errors are not retryable
	if IsRetryable(ErrNotFound) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	// Success on first try
	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should call once: %d", calls)
	}

	// Non-retryable error stops immediately
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return ErrNotFound
	})
	if err != ErrNotFound {
		t.Errorf("Should return non-retryable error: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should not retry non-retryable error: %d", calls)
	}

	// Retryable error triggers retries
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrNetwork)
		}
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed after retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("Should retry once: %d", calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrNetwork)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}
