package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// SessionStore implements ports.SessionStore using Redis. One key per
// manager identity holds the serialized session snapshot, so separate
// gateway processes resume the same platform session instead of each
// handshaking on their own.
type SessionStore struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

// NewSessionStore creates a Redis-backed manager session store. The TTL
// should exceed the session freshness window; staleness is judged by the
// reader, the TTL only garbage-collects abandoned snapshots.
func NewSessionStore(client *goredis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: "session:",
		ttl:    ttl,
	}
}

func (s *SessionStore) key(managerLogin uint64) string {
	return s.prefix + strconv.FormatUint(managerLogin, 10)
}

// Get retrieves the stored session snapshot for a manager.
// Returns nil, nil if none is stored.
func (s *SessionStore) Get(ctx context.Context, managerLogin uint64) ([]byte, error) {
	val, err := s.client.Get(ctx, s.key(managerLogin)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis session get: %w", err)
	}
	return val, nil
}

// Put stores a session snapshot for a manager.
func (s *SessionStore) Put(ctx context.Context, managerLogin uint64, blob []byte) error {
	if err := s.client.Set(ctx, s.key(managerLogin), blob, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis session put: %w", err)
	}
	return nil
}

// Clear removes the stored session snapshot for a manager.
func (s *SessionStore) Clear(ctx context.Context, managerLogin uint64) error {
	if err := s.client.Del(ctx, s.key(managerLogin)).Err(); err != nil {
		return fmt.Errorf("redis session clear: %w", err)
	}
	return nil
}
