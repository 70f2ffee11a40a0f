package tokenstore

import (
	"context"
	"sync"
)

// Suffixes appended to the configured key prefix. The prefix keeps the admin
// surface distinct from any end-user session keys in the same storage.
const (
	accessKeySuffix  = ":access_token"
	refreshKeySuffix = ":refresh_token"
)

// Store persists the opaque bearer token pair under fixed keys. It performs
// no validation and tracks no expiry; invalidity is discovered only by a
// failed authenticated call.
type Store interface {
	Save(ctx context.Context, access, refresh string) error
	Read(ctx context.Context) (string, bool)
	ReadRefresh(ctx context.Context) (string, bool)
	Clear(ctx context.Context) error
}

// MemoryStore keeps the token pair in process memory. Used when no durable
// storage is configured; tokens do not survive a restart, which is an
// accepted degraded mode rather than an error.
type MemoryStore struct {
	mu      sync.Mutex
	access  string
	refresh string
	set     bool
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save stores the pair, replacing any previous one. Last writer wins.
func (s *MemoryStore) Save(_ context.Context, access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = access
	s.refresh = refresh
	s.set = true
	return nil
}

// Read returns the access token if one is present.
func (s *MemoryStore) Read(_ context.Context) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", false
	}
	return s.access, true
}

// ReadRefresh returns the refresh token if one is present.
func (s *MemoryStore) ReadRefresh(_ context.Context) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", false
	}
	return s.refresh, true
}

// Clear removes the stored pair.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
	s.refresh = ""
	s.set = false
	return nil
}
