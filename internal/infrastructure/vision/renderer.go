//go:build gocv
// +build gocv

package vision

import (
	"context"
	"image"
	"image/color"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"diff-visualizer/internal/domain/entity"
)

// GoCVRenderer строит бинарную маску различий и рисует на ней аннотации.
type GoCVRenderer struct {
	Threshold   float32
	MaxValue    float32
	Color       color.RGBA
	Thickness   int
	PointRadius int
	Ext         string
}

// NewGoCVRenderer создаёт рендерер, который кодирует результат в формат ext (".jpg", ".png").
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

// Render декодирует оба изображения в оттенках серого, строит маску и кодирует итог.
func (r *GoCVRenderer) Render(ctx context.Context, base, current []byte, ann entity.Annotations) (*entity.DiffResult, error) {
	_ = ctx

	baseMat, err := decodeGray(base)
	if err != nil {
		return nil, errors.Wrap(err, "base image")
	}
	defer baseMat.Close()

	currentMat, err := decodeGray(current)
	if err != nil {
		return nil, errors.Wrap(err, "current image")
	}
	defer currentMat.Close()

	mask, err := r.DiffMask(baseMat, currentMat)
	if err != nil {
		return nil, err
	}
	defer mask.Close()
	changed := gocv.CountNonZero(mask)

	canvas := gocv.NewMat()
	defer canvas.Close()
	gocv.CvtColor(mask, &canvas, gocv.ColorGrayToBGR)

	r.Annotate(&canvas, ann)

	buf, err := gocv.IMEncode(gocv.FileExt(r.Ext), canvas)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s", r.Ext)
	}
	defer buf.Close()
	encoded := make([]byte, buf.Len())
	copy(encoded, buf.GetBytes())

	return &entity.DiffResult{
		Width:      baseMat.Cols(),
		Height:     baseMat.Rows(),
		SampleType: sampleType(baseMat.Type()),
		Channels:   canvas.Channels(),
		Changed:    changed,
		Image:      encoded,
	}, nil
}

// DiffMask возвращает |base - current|, бинаризованную по порогу.
// Вызывающий закрывает возвращённый Mat.
func (r *GoCVRenderer) DiffMask(base, current gocv.Mat) (gocv.Mat, error) {
	if base.Empty() || current.Empty() {
		return gocv.NewMat(), ErrEmptyImage
	}
	if base.Rows() != current.Rows() || base.Cols() != current.Cols() {
		return gocv.NewMat(), errors.Wrapf(ErrSizeMismatch, "%dx%d vs %dx%d",
			base.Cols(), base.Rows(), current.Cols(), current.Rows())
	}

	// AbsDiff на 8-битных данных не переполняется: |a-b| всегда в 0..255.
	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(base, current, &diff)

	mask := gocv.NewMat()
	gocv.Threshold(diff, &mask, r.Threshold, r.MaxValue, gocv.ThresholdBinary)
	return mask, nil
}

// Annotate рисует рамки и точки на трёхканальном изображении.
func (r *GoCVRenderer) Annotate(img *gocv.Mat, ann entity.Annotations) {
	for _, box := range ann.Boxes {
		// cv::rectangle по image.Rectangle не включает правый нижний угол.
		rect := box.Rect()
		rect.Max = rect.Max.Add(image.Pt(1, 1))
		gocv.Rectangle(img, rect, r.Color, r.Thickness)
	}
	for _, pt := range ann.Points() {
		gocv.Circle(img, pt, r.PointRadius, r.Color, -1)
	}
}

func decodeGray(data []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(data, gocv.IMReadGrayScale)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	if err != nil {
		return gocv.NewMat(), errors.Wrap(err, "failed to decode image")
	}
	return gocv.NewMat(), ErrEmptyImage
}

func sampleType(t gocv.MatType) string {
	switch t {
	case gocv.MatTypeCV8U:
		return "uint8"
	case gocv.MatTypeCV8S:
		return "int8"
	case gocv.MatTypeCV16U:
		return "uint16"
	case gocv.MatTypeCV16S:
		return "int16"
	case gocv.MatTypeCV32S:
		return "int32"
	case gocv.MatTypeCV32F:
		return "float32"
	case gocv.MatTypeCV64F:
		return "float64"
	}
	return "unknown"
}
