package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	s := newSpinner("working")
	s.Start()
	time.Sleep(150 * time.Millisecond)
	s.Stop()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner goroutine did not exit after Stop")
	}
}

func TestSpinnerStopIsIdempotentAcrossChannels(t *testing.T) {
	s := newSpinner("working")
	s.Start()
	s.Stop()
	// A second Stop must not panic on the already-closed done channel.
	s.Stop()
}

func TestSpinnerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinnerWithContext(ctx, "working")
	s.Start()
	cancel()

	// The animation goroutine exits on its own after cancellation.
	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner did not stop after context cancellation")
	}
	if !s.Cancelled() {
		t.Error("Cancelled() should be true after context cancellation")
	}
}
