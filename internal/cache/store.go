package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/iwvelando/fleet-forecast/internal/forecast"
)

// Store persists Results by key. Implementations must be safe for concurrent
// use.
type Store interface {
	Get(ctx context.Context, key string) (forecast.Result, bool, error)
	Set(ctx context.Context, key string, result forecast.Result) error
}

// MemoryStore is a bounded in-process Store. When full it evicts the entry
// inserted longest ago.
type MemoryStore struct {
	mu         sync.Mutex
	maxEntries int
	ttl        time.Duration
	now        func() time.Time
	order      *list.List
	entries    map[string]*list.Element
}

type memoryEntry struct {
	key     string
	result  forecast.Result
	expires time.Time
}

// NewMemoryStore returns a MemoryStore holding at most maxEntries results.
// A zero ttl keeps entries until they are evicted.
func NewMemoryStore(maxEntries int, ttl time.Duration) *MemoryStore {
	if maxEntries <= 0 {
		maxEntries = 1
	}
	return &MemoryStore{
		maxEntries: maxEntries,
		ttl:        ttl,
		now:        time.Now,
		order:      list.New(),
		entries:    make(map[string]*list.Element),
	}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, key string) (forecast.Result, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.entries[key]
	if !ok {
		return forecast.Result{}, false, nil
	}
	entry := elem.Value.(*memoryEntry)
	if !entry.expires.IsZero() && !s.now().Before(entry.expires) {
		s.order.Remove(elem)
		delete(s.entries, key)
		return forecast.Result{}, false, nil
	}
	return entry.result.Clone(), true, nil
}

// Set implements Store. Replacing an existing key keeps its eviction slot.
func (s *MemoryStore) Set(_ context.Context, key string, result forecast.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expires time.Time
	if s.ttl > 0 {
		expires = s.now().Add(s.ttl)
	}

	if elem, ok := s.entries[key]; ok {
		entry := elem.Value.(*memoryEntry)
		entry.result = result.Clone()
		entry.expires = expires
		return nil
	}

	for s.order.Len() >= s.maxEntries {
		oldest := s.order.Front()
		s.order.Remove(oldest)
		delete(s.entries, oldest.Value.(*memoryEntry).key)
	}

	s.entries[key] = s.order.PushBack(&memoryEntry{key: key, result: result.Clone(), expires: expires})
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}
