package kvstore

import (
	"context"
	"sync"
)

type memoryItem struct {
	data    []byte
	version int64
}

// MemoryBackend keeps everything in process memory. It is the default backend
// and the one used by tests.
type MemoryBackend struct {
	mu    sync.RWMutex
	items map[string]memoryItem
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{items: make(map[string]memoryItem)}
}

func (m *MemoryBackend) Read(_ context.Context, key string) ([]byte, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	it, ok := m.items[key]
	if !ok {
		return nil, 0, ErrNotFound
	}
	out := make([]byte, len(it.data))
	copy(out, it.data)
	return out, it.version, nil
}

func (m *MemoryBackend) Write(_ context.Context, key string, data []byte, expect int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur := m.items[key].version
	if expect != AnyVersion && cur != expect {
		return cur, ErrVersionConflict
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	next := cur + 1
	m.items[key] = memoryItem{data: buf, version: next}
	return next, nil
}

func (m *MemoryBackend) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}
