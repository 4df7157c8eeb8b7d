package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCredentialNotFound means the console token was revoked or has expired.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialStore maps console token ids to the backend token they stand for,
// so the backend token never leaves the server.
type CredentialStore struct {
	store Store
}

// NewCredentialStore creates a CredentialStore.
func NewCredentialStore(store Store) *CredentialStore {
	return &CredentialStore{store: store}
}

func credentialKey(tokenID string) string {
	return "auth:upstream:" + tokenID
}

// Put stores the backend token for tokenID for ttl.
func (s *CredentialStore) Put(ctx context.Context, tokenID, upstreamToken string, ttl time.Duration) error {
	return s.store.Set(ctx, credentialKey(tokenID), upstreamToken, ttl)
}

// Get returns the backend token for tokenID.
func (s *CredentialStore) Get(ctx context.Context, tokenID string) (string, error) {
	token, err := s.store.Get(ctx, credentialKey(tokenID))
	if errors.Is(err, ErrCacheMiss) {
		return "", ErrCredentialNotFound
	}
	return token, err
}

// Revoke forgets tokenID.
func (s *CredentialStore) Revoke(ctx context.Context, tokenID string) error {
	return s.store.Delete(ctx, credentialKey(tokenID))
}
