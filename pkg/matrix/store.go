package matrix

import (
	"context"
	"errors"
)

// ErrRunNotFound is returned by [Store.GetRun] when no run has the given ID.
var ErrRunNotFound = errors.New("run not found")

// Store persists completed matrix runs. Implementations must be safe for
// concurrent use.
type Store interface {
	// SaveRun persists a run, replacing any existing run with the same ID.
	SaveRun(ctx context.Context, run *Run) error

	// GetRun loads a run by ID. Returns ErrRunNotFound if absent.
	GetRun(ctx context.Context, id string) (*Run, error)

	// ListRuns returns up to limit runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]Run, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
