package storage

import (
	"context"
	"fmt"
	"os"
	"sync"

	"diff-visualizer/internal/domain/port"
)

// MemoryImageStore in-memory хранилище изображений
type MemoryImageStore struct {
	mu     sync.RWMutex
	images map[string][]byte
}

// NewMemoryImageStore создаёт новое in-memory хранилище
func NewMemoryImageStore() *MemoryImageStore {
	return &MemoryImageStore{
		images: make(map[string][]byte),
	}
}

// Read возвращает изображение по пути
func (s *MemoryImageStore) Read(ctx context.Context, path string) ([]byte, error) {
	s.mu.RLock()
	data, exists := s.images[path]
	s.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("read %s: %w", path, os.ErrNotExist)
	}

	return data, nil
}

// Write сохраняет изображение, старое значение затирается
func (s *MemoryImageStore) Write(ctx context.Context, path string, data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)

	s.mu.Lock()
	s.images[path] = buf
	s.mu.Unlock()

	return nil
}

// Проверка реализации интерфейса
var _ port.ImageStore = (*MemoryImageStore)(nil)
