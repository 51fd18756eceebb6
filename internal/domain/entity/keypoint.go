package entity

import "image"

// KeypointGroup плоский список x,y координат точек.
type KeypointGroup []float64

// Points разбивает группу на пары. Непарное последнее значение отбрасывается.
func (g KeypointGroup) Points() []image.Point {
	points := make([]image.Point, 0, len(g)/2)
	for j := 0; j < len(g)/2; j++ {
		points = append(points, image.Pt(int(g[2*j]), int(g[2*j+1])))
	}
	return points
}

// Annotations то, что рисуется поверх маски различий.
type Annotations struct {
	Boxes     []Box
	Keypoints []KeypointGroup // nil — точек нет
}

// DefaultAnnotations возвращает рамки по умолчанию без точек.
func DefaultAnnotations() Annotations {
	return Annotations{Boxes: DefaultBoxes()}
}

// Points возвращает все точки всех групп по порядку.
func (a Annotations) Points() []image.Point {
	var points []image.Point
	for _, g := range a.Keypoints {
		points = append(points, g.Points()...)
	}
	return points
}
