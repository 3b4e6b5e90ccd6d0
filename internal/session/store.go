package session

import (
	"time"

	"github.com/patrickmn/go-cache"

	"bananastudio/internal/domain"
)

// Store keeps live sessions in a TTL cache. Idle sessions expire and take
// their gallery with them; every Get refreshes the deadline so an attended
// session never dies mid-use.
type Store struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewStore builds a Store with the given idle TTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &Store{
		cache: cache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

// Create starts a fresh session and registers it.
func (s *Store) Create() *Session {
	sess := newSession()
	s.cache.Set(sess.ID, sess, s.ttl)
	return sess
}

// Get resolves a session by id and refreshes its TTL.
func (s *Store) Get(id string) (*Session, error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	sess := v.(*Session)
	s.cache.Set(id, sess, s.ttl)
	return sess, nil
}

// Delete drops a session immediately.
func (s *Store) Delete(id string) {
	s.cache.Delete(id)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	return s.cache.ItemCount()
}
