package app

import (
	"context"

	"github.com/pkg/errors"

	"diff-visualizer/internal/domain/entity"
	"diff-visualizer/internal/domain/port"
)

// DiffRequest описывает одно сравнение.
type DiffRequest struct {
	BasePath    string
	CurrentPath string
	OutputPath  string
	Annotations entity.Annotations
}

type DiffService struct {
	store     port.ImageStore
	renderer  port.DiffRenderer
	publisher port.ResultPublisher
}

// NewDiffService создаёт сервис сравнения. publisher может быть nil.
func NewDiffService(store port.ImageStore, renderer port.DiffRenderer, publisher port.ResultPublisher) *DiffService {
	return &DiffService{
		store:     store,
		renderer:  renderer,
		publisher: publisher,
	}
}

// Run читает оба изображения, строит результат и записывает его в OutputPath.
func (s *DiffService) Run(ctx context.Context, req DiffRequest) (*entity.DiffResult, error) {
	if s.renderer == nil {
		return nil, errors.New("renderer is not configured")
	}
	if req.OutputPath == "" {
		return nil, errors.New("output path is empty")
	}

	base, err := s.store.Read(ctx, req.BasePath)
	if err != nil {
		return nil, err
	}
	current, err := s.store.Read(ctx, req.CurrentPath)
	if err != nil {
		return nil, err
	}

	result, err := s.renderer.Render(ctx, base, current, req.Annotations)
	if err != nil {
		return nil, errors.Wrap(err, "render diff")
	}

	if err := s.store.Write(ctx, req.OutputPath, result.Image); err != nil {
		return nil, err
	}
	result.Name = req.OutputPath

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, result); err != nil {
			return nil, errors.Wrap(err, "publish result")
		}
	}

	return result, nil
}
