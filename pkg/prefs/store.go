// Package prefs хранит локальные пользовательские настройки клиента.
//
// Сейчас это только тема оформления (ключ "theme", значения "light"/"dark").
package prefs

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound возвращается когда ключ не найден в хранилище.
var ErrNotFound = errors.New("pref not found")

// Store — key/value хранилище настроек.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// MemoryStore — Store в памяти процесса. Переживает только "перезагрузку"
// модели внутри одного процесса, что удобно в тестах.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore создает пустое хранилище.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get возвращает значение или ErrNotFound.
func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set сохраняет значение.
func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Close ничего не делает.
func (m *MemoryStore) Close() error {
	return nil
}
