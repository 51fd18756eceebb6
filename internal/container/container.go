package container

import (
	app "diff-visualizer/internal/application"
	"diff-visualizer/internal/domain/port"
)

type Container struct {
	DiffService *app.DiffService
}

func New(store port.ImageStore, renderer port.DiffRenderer, publisher port.ResultPublisher) *Container {
	return &Container{
		DiffService: app.NewDiffService(store, renderer, publisher),
	}
}
