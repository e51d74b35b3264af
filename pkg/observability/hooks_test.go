package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Distance hooks
	d := NoopDistanceHooks{}
	d.OnDistanceStart("inversion", 100)
	d.OnDistanceComplete("inversion", 100, 7, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "pair")
	c.OnCacheMiss(ctx, "pair")
	c.OnCacheSet(ctx, "pair", 1024)

	// Matrix hooks
	m := NoopMatrixHooks{}
	m.OnRunStart(ctx, "run-1", 4)
	m.OnPairComplete(ctx, "run-1", 0, 1, 3, nil)
	m.OnRunComplete(ctx, "run-1", time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Distance().(NoopDistanceHooks); !ok {
		t.Error("Distance() should return NoopDistanceHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Matrix().(NoopMatrixHooks); !ok {
		t.Error("Matrix() should return NoopMatrixHooks by default")
	}

	// Set custom hooks
	customDistance := &testDistanceHooks{}
	SetDistanceHooks(customDistance)
	if Distance() != customDistance {
		t.Error("SetDistanceHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customMatrix := &testMatrixHooks{}
	SetMatrixHooks(customMatrix)
	if Matrix() != customMatrix {
		t.Error("SetMatrixHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Distance().(NoopDistanceHooks); !ok {
		t.Error("Reset() should restore NoopDistanceHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testDistanceHooks{}
	SetDistanceHooks(custom)

	// Setting nil should be ignored
	SetDistanceHooks(nil)

	if Distance() != custom {
		t.Error("SetDistanceHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testDistanceHooks struct{ NoopDistanceHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testMatrixHooks struct{ NoopMatrixHooks }
