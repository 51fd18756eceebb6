package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryImageStore_ReadWrite(t *testing.T) {
	s := NewMemoryImageStore()
	ctx := context.Background()

	_, err := s.Read(ctx, "a.png")
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, s.Write(ctx, "a.png", []byte("first")))
	require.NoError(t, s.Write(ctx, "a.png", []byte("second")))

	data, err := s.Read(ctx, "a.png")
	require.NoError(t, err)
	require.Equal(t, []byte("second"), data)
}

func TestFileImageStore_Overwrite(t *testing.T) {
	s := NewFileImageStore()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "xx.jpg")

	require.NoError(t, s.Write(ctx, path, []byte("longer content")))
	require.NoError(t, s.Write(ctx, path, []byte("short")))

	data, err := s.Read(ctx, path)
	require.NoError(t, err)
	require.Equal(t, []byte("short"), data)
}

func TestFileImageStore_Missing(t *testing.T) {
	s := NewFileImageStore()
	_, err := s.Read(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
