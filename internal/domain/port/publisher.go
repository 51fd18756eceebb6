package port

import (
	"context"

	"diff-visualizer/internal/domain/entity"
)

// ResultPublisher отправляет готовый результат для просмотра
type ResultPublisher interface {
	Publish(ctx context.Context, result *entity.DiffResult) error
}
