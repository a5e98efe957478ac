package cache

import (
	"context"
	"encoding/json"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketEntries = []byte("entries")

// envelope wraps a cached payload with its absolute expiry.
type envelope struct {
	Payload   json.RawMessage `json:"payload"`
	ExpiresAt int64           `json:"expires_at"` // unix seconds
}

// BoltStore implements [Store] on a bbolt file.
//
// Entries carry an absolute expiry inside a JSON envelope; reads past expiry
// report a miss and delete the stale entry opportunistically. There is no
// background sweeper.
type BoltStore struct {
	db  *bolt.DB
	now func() time.Time
}

// NewBoltStore opens (or creates) the bbolt file at path.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketEntries)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db, now: time.Now}, nil
}

// Get reads key, reporting Hit, Miss, or Unavailable.
func (s *BoltStore) Get(ctx context.Context, key string) ([]byte, Outcome) {
	var data []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketEntries)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, Unavailable
	}

	if data == nil {
		return nil, Miss
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		// Corrupt entry: drop it and treat as a miss.
		s.delete(key)
		return nil, Miss
	}

	if s.now().Unix() >= env.ExpiresAt {
		s.delete(key)
		return nil, Miss
	}

	return env.Payload, Hit
}

// Set writes key with the given TTL.
func (s *BoltStore) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	env := envelope{
		Payload:   payload,
		ExpiresAt: s.now().Add(ttl).Unix(),
	}

	data, err := json.Marshal(env)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketEntries)
		return b.Put([]byte(key), data)
	})
}

// Close closes the underlying bbolt file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) delete(key string) {
	s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketEntries)
		if b != nil {
			b.Delete([]byte(key))
		}
		return nil
	})
}
