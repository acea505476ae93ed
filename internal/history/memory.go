package history

import (
	"sync"

	"github.com/happyhipo/propcost/internal/purchase"
)

// Entry pairs a purchase input with its computed quote.
type Entry struct {
	Input purchase.Input
	Quote purchase.Quote
}

// MemoryStore is an in-memory implementation of Store.
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemoryStore creates a new in-memory quote store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save stores the quote in memory.
func (s *MemoryStore) Save(in purchase.Input, quote purchase.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, Entry{Input: in, Quote: quote})
	return nil
}

// Recent returns up to n most recent entries, newest first.
func (s *MemoryStore) Recent(n int) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 || len(s.entries) == 0 {
		return nil
	}
	if n > len(s.entries) {
		n = len(s.entries)
	}

	out := make([]Entry, 0, n)
	for i := len(s.entries) - 1; i >= len(s.entries)-n; i-- {
		out = append(out, s.entries[i])
	}
	return out
}

// MemoryCache is an in-memory implementation of Cache, used in tests and
// when no redis address is configured.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryCache creates a new in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string]string)}
}

// Get returns the cached value for key.
func (c *MemoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	val, ok := c.data[key]
	return val, ok
}

// Set stores value under key.
func (c *MemoryCache) Set(key string, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}
