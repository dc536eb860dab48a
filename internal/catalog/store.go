// Package catalog holds the client's cached copy of the product list and
// derives filtered, sorted views of it.
package catalog

import (
	"sync"

	"phonetech/internal/models"
)

// Store caches the full phone list fetched from the backend. Replace swaps
// the whole snapshot at once, so overlapping refreshes resolve to whichever
// response lands last.
type Store struct {
	mu          sync.RWMutex
	phones      []models.Phone
	subscribers []func([]models.Phone)
}

func NewStore() *Store {
	return &Store{}
}

// Replace installs a fresh snapshot and notifies subscribers.
func (s *Store) Replace(phones []models.Phone) {
	s.mu.Lock()
	s.phones = make([]models.Phone, len(phones))
	copy(s.phones, phones)
	snapshot := s.phones
	subs := s.subscribers
	s.mu.Unlock()

	for _, notify := range subs {
		notify(snapshot)
	}
}

// Snapshot returns a copy of the cached list; callers may sort and filter it
// freely without affecting the cache.
func (s *Store) Snapshot() []models.Phone {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Phone, len(s.phones))
	copy(out, s.phones)
	return out
}

// Get looks up a cached phone by id.
func (s *Store) Get(id int) (models.Phone, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.phones {
		if p.ID == id {
			return p, true
		}
	}
	return models.Phone{}, false
}

// Remove drops a phone from the cache, keeping the next render consistent
// after an admin delete without waiting for a refetch.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	kept := s.phones[:0]
	for _, p := range s.phones {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.phones = kept
	s.mu.Unlock()
}

// Len reports the number of cached phones.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.phones)
}

// Subscribe registers a callback invoked after every Replace.
func (s *Store) Subscribe(fn func([]models.Phone)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Featured returns up to n phones for the home page strip.
func (s *Store) Featured(n int) []models.Phone {
	snapshot := s.Snapshot()
	if len(snapshot) > n {
		snapshot = snapshot[:n]
	}
	return snapshot
}

// Brands returns the distinct brands present in the cache, in first-seen
// order, for the filter dropdown.
func (s *Store) Brands() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool, len(s.phones))
	brands := make([]string, 0, len(s.phones))
	for _, p := range s.phones {
		if !seen[p.Brand] {
			seen[p.Brand] = true
			brands = append(brands, p.Brand)
		}
	}
	return brands
}
