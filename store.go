package uncover

import "sync"

// A Store maps mark names to hit counts. Marks are created implicitly on
// first use and counts only ever increase. The zero value is not usable;
// call NewStore, or use Global for the process-wide instance.
type Store struct {
	mu   sync.Mutex
	hits map[string]uint64
}

// NewStore returns an empty, isolated Store. Most callers want Global;
// isolated stores exist so the package's own tests do not interfere with
// each other.
func NewStore() *Store {
	return &Store{hits: make(map[string]uint64)}
}

// Record adds one hit for mark, creating it if this is its first hit.
func (s *Store) Record(mark string) {
	s.mu.Lock()
	s.hits[mark]++
	s.mu.Unlock()
}

// Get returns the current hit count for mark, 0 if it was never recorded.
func (s *Store) Get(mark string) uint64 {
	s.mu.Lock()
	n := s.hits[mark]
	s.mu.Unlock()
	return n
}

var (
	globalOnce  sync.Once
	globalStore *Store
)

// Global returns the process-wide Store shared by all Hooks built with
// EnableIf. It is initialized on first use and lives until process exit;
// there is no way to reset it.
func Global() *Store {
	globalOnce.Do(func() {
		globalStore = NewStore()
	})
	return globalStore
}
