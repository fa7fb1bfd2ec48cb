package store

import (
	"context"
	"sync"

	"github.com/gofrs/uuid"
)

// Memory is an in-process SnapshotStore, useful for tests and for CLI
// invocations that don't configure a database.
type Memory struct {
	mu   sync.RWMutex
	data map[Key]Snapshot
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[Key]Snapshot)}
}

func (m *Memory) Save(_ context.Context, snap Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(snap.State))
	copy(cp, snap.State)
	snap.State = cp
	m.data[snap.Key] = snap
	return nil
}

func (m *Memory) Load(_ context.Context, key Key) (Snapshot, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap, ok := m.data[key]
	return snap, ok, nil
}

func (m *Memory) List(_ context.Context, session uuid.UUID) ([]Key, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []Key
	for k := range m.data {
		if k.Session == session {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (m *Memory) Delete(_ context.Context, key Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
