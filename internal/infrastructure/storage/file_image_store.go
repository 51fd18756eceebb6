package storage

import (
	"context"
	"fmt"
	"os"

	"diff-visualizer/internal/domain/port"
)

// FileImageStore читает и пишет изображения на диск
type FileImageStore struct {
	Perm os.FileMode
}

// NewFileImageStore создаёт файловое хранилище
func NewFileImageStore() *FileImageStore {
	return &FileImageStore{Perm: 0o644}
}

// Read читает файл целиком
func (s *FileImageStore) Read(ctx context.Context, path string) ([]byte, error) {
	_ = ctx
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return data, nil
}

// Write перезаписывает файл по пути
func (s *FileImageStore) Write(ctx context.Context, path string, data []byte) error {
	_ = ctx
	if err := os.WriteFile(path, data, s.Perm); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	return nil
}

var _ port.ImageStore = (*FileImageStore)(nil)
