// Package vision строит изображение различий двух снимков.
package vision

import (
	"image/color"

	"github.com/pkg/errors"

	"diff-visualizer/internal/domain/port"
)

const (
	// DefaultThreshold отличие больше этого значения считается изменением.
	DefaultThreshold = 40
	// DefaultExt формат результата по умолчанию.
	DefaultExt = ".jpg"
)

var (
	ErrEmptyImage   = errors.New("empty image")
	ErrSizeMismatch = errors.New("image sizes differ")
)

var red = color.RGBA{R: 255, A: 255}

var _ port.DiffRenderer = (*GoCVRenderer)(nil)
