package lock

import (
	"context"
	"sync"
)

// Memory is an in-process Locker for single-instance deployments.
type Memory struct {
	mu   sync.Mutex
	held map[string]bool
}

func NewMemory() *Memory {
	return &Memory{held: make(map[string]bool)}
}

func (m *Memory) Acquire(_ context.Context, key string) (func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.held[key] {
		return nil, ErrLocked
	}
	m.held[key] = true

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.held, key)
			m.mu.Unlock()
		})
	}, nil
}

var (
	_ Locker = Noop{}
	_ Locker = (*Memory)(nil)
)
