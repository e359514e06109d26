package snapshot

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryStore keeps snapshots in process memory. Used when no S3 endpoint is
// configured and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

func (m *MemoryStore) Put(_ context.Context, requestID, path string, content []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(content))
	copy(cp, content)
	m.objects[objectKey(requestID, path)] = cp
	return nil
}

func (m *MemoryStore) Get(_ context.Context, requestID, path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[objectKey(requestID, path)]
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

// RequestIDs lists the distinct request IDs currently held. Test helper.
func (m *MemoryStore) RequestIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := make(map[string]bool)
	var ids []string
	for key := range m.objects {
		id, _, ok := strings.Cut(key, "/")
		if ok && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func (m *MemoryStore) List(_ context.Context, requestID string) ([]string, error) {
	prefix := strings.TrimSpace(requestID) + "/"
	m.mu.RLock()
	defer m.mu.RUnlock()
	paths := make([]string, 0, 8)
	for key := range m.objects {
		if strings.HasPrefix(key, prefix) {
			paths = append(paths, strings.TrimPrefix(key, prefix))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
