package port

import (
	"context"

	"diff-visualizer/internal/domain/entity"
)

// DiffRenderer интерфейс построителя изображения различий
type DiffRenderer interface {
	// Render сравнивает два закодированных изображения и рисует аннотации поверх маски
	Render(ctx context.Context, base, current []byte, ann entity.Annotations) (*entity.DiffResult, error)
}
