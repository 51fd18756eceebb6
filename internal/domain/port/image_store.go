package port

import "context"

// ImageStore интерфейс хранилища закодированных изображений
type ImageStore interface {
	// Read возвращает содержимое изображения по пути
	Read(ctx context.Context, path string) ([]byte, error)

	// Write записывает изображение, перезаписывая существующее
	Write(ctx context.Context, path string, data []byte) error
}
