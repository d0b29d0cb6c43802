// Package session persists the single bearer token that authenticates CareerCore API calls.
package session

import "sync"

// TokenKey is the storage key the token is kept under.
const TokenKey = "ii_access_token"

// Store holds at most one bearer token. Its presence is the only authentication signal.
type Store interface {
	// Token returns the stored token, or "" when none is stored or it cannot be read.
	Token() string
	// SetToken persists token, overwriting any existing value.
	SetToken(token string) error
	// ClearToken removes the stored token. Clearing an empty store is not an error.
	ClearToken() error
}

// IsAuthenticated reports whether s currently holds a non-empty token.
func IsAuthenticated(s Store) bool {
	return s.Token() != ""
}

// MemoryStore is an in-process Store, isolated per instance.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *MemoryStore) SetToken(token string) error {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) ClearToken() error {
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()
	return nil
}
