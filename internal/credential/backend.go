package credential

import "sync"

// Backend is one storage tier: a flat string key/value store.
//
// Implementations must be safe for concurrent use. A missing key reads as
// absent, never as an error; backends recover from their own corruption by
// reporting keys as absent.
type Backend interface {
	// Get returns the value for key, or ok=false if the key is absent.
	Get(key string) (value string, ok bool)

	// Set stores the value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes the key. Deleting an absent key is a no-op.
	Delete(key string) error
}

// MemoryBackend is the session-scoped tier: it lives for the process and is
// gone when the client exits, like browser session storage.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryBackend creates an empty session-scoped tier.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string]string)}
}

// Get returns the value for key.
func (m *MemoryBackend) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Set stores the value under key.
func (m *MemoryBackend) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Delete removes the key.
func (m *MemoryBackend) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
