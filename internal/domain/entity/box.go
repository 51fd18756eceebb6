package entity

import (
	"errors"
	"image"
)

// ErrMalformedBox возвращается, если у рамки меньше четырёх координат.
var ErrMalformedBox = errors.New("box needs at least 4 coordinates")

// Box прямоугольная аннотация в пиксельных координатах
type Box struct {
	X1, Y1 float64 // первый угол
	X2, Y2 float64 // противоположный угол
	Score  float64 // уверенность, не рисуется
}

// NewBox собирает рамку из (x1, y1, x2, y2[, score]).
// Значения после пятого игнорируются.
func NewBox(values ...float64) (Box, error) {
	if len(values) < 4 {
		return Box{}, ErrMalformedBox
	}
	b := Box{X1: values[0], Y1: values[1], X2: values[2], Y2: values[3]}
	if len(values) > 4 {
		b.Score = values[4]
	}
	return b, nil
}

// Corners возвращает углы рамки с усечёнными до целых координатами.
func (b Box) Corners() (image.Point, image.Point) {
	return image.Pt(int(b.X1), int(b.Y1)), image.Pt(int(b.X2), int(b.Y2))
}

// Rect возвращает рамку как image.Rectangle (углы нормализуются).
func (b Box) Rect() image.Rectangle {
	p1, p2 := b.Corners()
	return image.Rect(p1.X, p1.Y, p2.X, p2.Y)
}

// DefaultBoxes фиксированный набор рамок для сравнения.
func DefaultBoxes() []Box {
	return []Box{
		{X1: 238, Y1: 2, X2: 408, Y2: 182},
		{X1: 412, Y1: 2, X2: 424, Y2: 36},
		{X1: 14, Y1: 114, X2: 22, Y2: 124},
		{X1: 412, Y1: 120, X2: 424, Y2: 174},
	}
}
