package plugin

import "sync"

// Setting keys understood by the plugin. The API token is the only secret; the rest are preferences with
// defaults applied when absent or unparseable.
const (
	KeyAPIToken      = "api_token"
	KeyMaxTasks      = "max_tasks"       // default 10
	KeyProject       = "project"         // default "inbox"
	KeyShowTodayOnly = "show_today_only" // default true
)

// Store is the host-provided persistent key-value storage for plugin settings. It is an injected capability:
// the plugin receives one at construction and never reaches for storage on its own, so tests can substitute an
// in-memory store.
type Store interface {
	Get(key string) (value string, ok bool)
	Set(key, value string) error
}

// MemoryStore is a Store holding values in memory. Useful for tests and for hosts without persistent settings.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements Store.
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok
}

// Set implements Store.
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
