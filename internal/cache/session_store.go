package cache

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound means the session expired, was discarded or never existed.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists bundle editing sessions as JSON with a sliding TTL.
type SessionStore struct {
	store Store
	ttl   time.Duration
}

// NewSessionStore creates a SessionStore.
func NewSessionStore(store Store, ttl time.Duration) *SessionStore {
	return &SessionStore{store: store, ttl: ttl}
}

func sessionKey(id string) string {
	return "bundle:session:" + id
}

// Load decodes session id into dest.
func (s *SessionStore) Load(ctx context.Context, id string, dest any) error {
	err := getJSON(ctx, s.store, sessionKey(id), dest)
	if errors.Is(err, ErrCacheMiss) {
		return ErrSessionNotFound
	}
	return err
}

// Save writes session id and restarts its TTL.
func (s *SessionStore) Save(ctx context.Context, id string, v any) error {
	return setJSON(ctx, s.store, sessionKey(id), v, s.ttl)
}

// Delete discards session id.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, sessionKey(id))
}
