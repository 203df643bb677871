package kv

import "sync"

// Mem is an in-memory store for tests.
type Mem struct {
	mu    sync.Mutex
	blobs map[string][]byte

	// Writes counts Set calls, letting tests assert on persistence
	// frequency.
	Writes int

	// FailWrites makes every Set return ErrWriteFailed.
	FailWrites bool
}

// NewMem returns an empty in-memory store.
func NewMem() *Mem {
	return &Mem{blobs: make(map[string][]byte)}
}

// Get returns the blob stored under key.
func (m *Mem) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[key]
	return data, ok, nil
}

// Set stores the blob under key.
func (m *Mem) Set(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return ErrWriteFailed
	}
	m.Writes++
	copied := make([]byte, len(data))
	copy(copied, data)
	m.blobs[key] = copied
	return nil
}
