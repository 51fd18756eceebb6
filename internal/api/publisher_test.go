package telegram

import (
	"testing"

	"github.com/stretchr/testify/require"

	"diff-visualizer/internal/domain/entity"
)

func TestCaption(t *testing.T) {
	r := &entity.DiffResult{Width: 640, Height: 480, Changed: 12}
	require.Equal(t, "🔍 Различия: 12 пикс. на изображении (480, 640)", caption(r))

	r.Changed = 0
	require.Equal(t, "✅ Различий выше порога нет, изображение (480, 640)", caption(r))
}

func TestFileName(t *testing.T) {
	require.Equal(t, "diff.jpg", fileName(&entity.DiffResult{}))
	require.Equal(t, "xx.jpg", fileName(&entity.DiffResult{Name: "out/xx.jpg"}))
}
