package entity

import "fmt"

// DiffResult итог сравнения двух изображений.
type DiffResult struct {
	Width      int    // ширина входных изображений
	Height     int    // высота входных изображений
	SampleType string // тип отсчёта первого изображения, например uint8
	Channels   int    // каналов в итоговом изображении
	Changed    int    // число пикселей выше порога
	Image      []byte // закодированное итоговое изображение
	Name       string // путь, куда записан результат
}

// Shape возвращает размер первого изображения в виде (высота, ширина).
func (r *DiffResult) Shape() string {
	return fmt.Sprintf("(%d, %d)", r.Height, r.Width)
}

// StatusLine строка диагностики для stdout.
func (r *DiffResult) StatusLine() string {
	return fmt.Sprintf("imgshape: %s %s", r.Shape(), r.SampleType)
}

// HasChanges флаг наличия отличий
func (r *DiffResult) HasChanges() bool {
	return r.Changed > 0
}
