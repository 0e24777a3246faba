package kvstore

import (
	"context"
	"sync"
)

// Memory keeps entries in process. A positive quota bounds the total stored bytes
// (keys plus values), after which Set fails with ErrQuotaExceeded.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]string
	used    int
	quota   int
}

func NewMemory(quotaBytes int) *Memory {
	return &Memory{entries: make(map[string]string), quota: quotaBytes}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.entries[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.used + len(value)
	if prev, ok := m.entries[key]; ok {
		next -= len(prev)
	} else {
		next += len(key)
	}
	if m.quota > 0 && next > m.quota {
		return ErrQuotaExceeded
	}
	m.entries[key] = value
	m.used = next
	return nil
}

func (m *Memory) Ping(context.Context) error { return nil }

// Len reports the number of stored keys.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
