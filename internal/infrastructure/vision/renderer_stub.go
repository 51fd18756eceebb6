//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"image/color"

	"github.com/pkg/errors"

	"diff-visualizer/internal/domain/entity"
)

type GoCVRenderer struct {
	Threshold   float32
	MaxValue    float32
	Color       color.RGBA
	Thickness   int
	PointRadius int
	Ext         string
}

// NewGoCVRenderer создаёт рендерер-заглушку (без OpenCV).
func NewGoCVRenderer(ext string) *GoCVRenderer {
	if ext == "" {
		ext = DefaultExt
	}
	return &GoCVRenderer{
		Threshold:   DefaultThreshold,
		MaxValue:    255,
		Color:       red,
		Thickness:   2,
		PointRadius: 2,
		Ext:         ext,
	}
}

// Render возвращает ошибку, если сборка без тега gocv.
func (r *GoCVRenderer) Render(ctx context.Context, base, current []byte, ann entity.Annotations) (*entity.DiffResult, error) {
	_ = ctx
	_ = base
	_ = current
	_ = ann
	return nil, errors.New("gocv build tag is not enabled")
}
