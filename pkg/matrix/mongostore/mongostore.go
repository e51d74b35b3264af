// Package mongostore persists matrix runs in MongoDB.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/genedist/genedist/pkg/cache"
	"github.com/genedist/genedist/pkg/matrix"
)

// Store implements [matrix.Store] on a MongoDB collection. Runs are keyed
// by their UUID in the _id field.
type Store struct {
	client *mongo.Client
	runs   *mongo.Collection
}

// New connects to MongoDB at uri and verifies the connection with a ping.
// Runs are stored in the "runs" collection of the named database.
func New(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &Store{
		client: client,
		runs:   client.Database(database).Collection("runs"),
	}, nil
}

// SaveRun persists a run, replacing any existing run with the same ID.
// Transient write failures are retried; the upsert makes retries idempotent.
func (s *Store) SaveRun(ctx context.Context, run *matrix.Run) error {
	opts := options.Replace().SetUpsert(true)
	err := cache.RetryWithBackoff(ctx, func() error {
		_, err := s.runs.ReplaceOne(ctx, bson.M{"_id": run.ID}, run, opts)
		return cache.Retryable(err)
	})
	if err != nil {
		return fmt.Errorf("save run %s: %w", run.ID, err)
	}
	return nil
}

// GetRun loads a run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (*matrix.Run, error) {
	var run matrix.Run
	err := s.runs.FindOne(ctx, bson.M{"_id": id}).Decode(&run)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, matrix.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return &run, nil
}

// ListRuns returns up to limit runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]matrix.Run, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := s.runs.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer cur.Close(ctx)

	var runs []matrix.Run
	if err := cur.All(ctx, &runs); err != nil {
		return nil, fmt.Errorf("decode runs: %w", err)
	}
	return runs, nil
}

// Close disconnects from MongoDB.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure Store implements matrix.Store.
var _ matrix.Store = (*Store)(nil)
