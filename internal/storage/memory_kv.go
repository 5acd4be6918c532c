package storage

import "sync"

// MemoryKV is an in-process KV used by tests and by the --ephemeral CLI
// mode. Writes counts how many logical write operations were observed,
// which lets tests assert that precondition no-ops do not persist.
type MemoryKV struct {
	mu     sync.Mutex
	data   map[string]string
	writes int
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.writes++
	return nil
}

func (m *MemoryKV) SetAll(pairs map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, value := range pairs {
		m.data[key] = value
	}
	m.writes++
	return nil
}

// Writes reports the number of logical write operations so far.
func (m *MemoryKV) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
