package trip

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
)

// tripsKey is the single logical key the whole collection round-trips
// under. There is no partial persistence: every save rewrites the document.
const tripsKey = "globetrotter_trips"

// documentVersion tags the persisted envelope so future shape changes can
// be detected on load.
const documentVersion = 1

// Store persists the whole trip collection as one document.
type Store interface {
	Load(ctx context.Context) ([]Trip, error)
	Save(ctx context.Context, trips []Trip) error
}

type document struct {
	Version int    `json:"version"`
	Trips   []Trip `json:"trips"`
}

// RedisStore keeps the collection under one redis key.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, key: tripsKey}
}

func (s *RedisStore) Load(ctx context.Context) ([]Trip, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeDocument(raw)
}

func (s *RedisStore) Save(ctx context.Context, trips []Trip) error {
	raw, err := json.Marshal(document{Version: documentVersion, Trips: trips})
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, raw, 0).Err()
}

func decodeDocument(raw []byte) ([]Trip, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		// Pre-versioned documents were a bare array.
		var trips []Trip
		if arrErr := json.Unmarshal(raw, &trips); arrErr == nil {
			return trips, nil
		}
		return nil, err
	}
	if doc.Version != 0 && doc.Version != documentVersion {
		return nil, errors.New("unsupported trips document version")
	}
	return doc.Trips, nil
}

// MemoryStore backs the repository when no redis is configured. It keeps
// the same serialize-everything contract so tests exercise the real codec.
type MemoryStore struct {
	mu  sync.Mutex
	raw []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) ([]Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.raw == nil {
		return nil, nil
	}
	return decodeDocument(s.raw)
}

func (s *MemoryStore) Save(_ context.Context, trips []Trip) error {
	raw, err := json.Marshal(document{Version: documentVersion, Trips: trips})
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.raw = raw
	s.mu.Unlock()
	return nil
}
