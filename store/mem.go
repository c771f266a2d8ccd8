package store

import "sync"

// MemKV keeps values in memory only. It is used for dry runs and tests.
type MemKV struct {
	data map[string]string
	mu   sync.RWMutex
}

func NewMemKV() *MemKV {
	return &MemKV{data: make(map[string]string)}
}

func (m *MemKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]

	return v, ok, nil
}

func (m *MemKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value

	return nil
}

func (m *MemKV) Close() error {
	return nil
}
