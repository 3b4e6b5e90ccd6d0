package studio

import (
	"context"
	"sync"
)

// KeySelector abstracts the paid-tier API key selection capability probed
// before video generation. Implementations must not block dispatch.
type KeySelector interface {
	HasSelectedKey(ctx context.Context) bool
	OpenSelectKey(ctx context.Context)
}

// PaidKeyStore is the in-memory KeySelector. Selecting a key is an explicit
// user action surfaced over the config API; OpenSelectKey only flags that the
// selection flow is wanted, it never waits for it.
type PaidKeyStore struct {
	mu       sync.RWMutex
	selected bool
	pending  bool
}

// NewPaidKeyStore returns an empty store: no key selected, no prompt pending.
func NewPaidKeyStore() *PaidKeyStore {
	return &PaidKeyStore{}
}

// HasSelectedKey reports whether a paid-tier key has been chosen.
func (s *PaidKeyStore) HasSelectedKey(ctx context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// OpenSelectKey marks the selection flow as requested.
func (s *PaidKeyStore) OpenSelectKey(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.selected {
		s.pending = true
	}
}

// SelectKey records that the user completed the selection flow.
func (s *PaidKeyStore) SelectKey() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = true
	s.pending = false
}

// SelectionPending reports whether a selection prompt is outstanding.
func (s *PaidKeyStore) SelectionPending() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending
}
