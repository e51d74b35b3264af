package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores distance results under a local directory, one JSON
// envelope per key. Entries are tiny (a distance value or a serialized
// matrix run), so there is no size accounting; expired envelopes are
// removed lazily on read.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache rooted at dir, creating it if
// needed. The CLI points this at the user's XDG cache directory.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// envelope is the on-disk record for a single entry. Expires is unix
// nanoseconds; zero means the entry never expires.
type envelope struct {
	Payload []byte `json:"payload"`
	Expires int64  `json:"expires,omitempty"`
}

func (e envelope) expired(now time.Time) bool {
	return e.Expires != 0 && now.UnixNano() >= e.Expires
}

// Get returns the payload stored under key. Corrupt or expired envelopes
// are deleted and reported as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var e envelope
	if err := json.Unmarshal(raw, &e); err != nil || e.expired(time.Now()) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return e.Payload, true, nil
}

// Set writes payload under key. A zero ttl stores the entry without an
// expiry; any other ttl is added to the current time, so negative values
// produce an already-expired entry.
func (c *FileCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	e := envelope{Payload: payload}
	if ttl != 0 {
		e.Expires = time.Now().Add(ttl).UnixNano()
	}

	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}

// Delete removes the entry under key. Deleting an absent key is a no-op.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op; every operation opens and closes its own file.
func (c *FileCache) Close() error {
	return nil
}

// path shards entries into 256 subdirectories by the first byte of the
// key hash, keeping directory listings small for large matrix runs.
func (c *FileCache) path(key string) string {
	sum := Hash([]byte(key))
	return filepath.Join(c.dir, sum[:2], sum[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
