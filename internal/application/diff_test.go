package app

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"diff-visualizer/internal/domain/entity"
	"diff-visualizer/internal/infrastructure/storage"
)

type fakeRenderer struct {
	base, current []byte
	ann           entity.Annotations
	err           error
}

func (f *fakeRenderer) Render(ctx context.Context, base, current []byte, ann entity.Annotations) (*entity.DiffResult, error) {
	f.base, f.current, f.ann = base, current, ann
	if f.err != nil {
		return nil, f.err
	}
	return &entity.DiffResult{Width: 4, Height: 3, Channels: 3, SampleType: "uint8", Image: []byte("rendered")}, nil
}

type fakePublisher struct {
	published []*entity.DiffResult
	err       error
}

func (f *fakePublisher) Publish(ctx context.Context, result *entity.DiffResult) error {
	f.published = append(f.published, result)
	return f.err
}

func seededStore(t *testing.T) *storage.MemoryImageStore {
	t.Helper()
	store := storage.NewMemoryImageStore()
	ctx := context.Background()
	require.NoError(t, store.Write(ctx, "a.png", []byte("A")))
	require.NoError(t, store.Write(ctx, "b.png", []byte("B")))
	require.NoError(t, store.Write(ctx, "xx.jpg", []byte("stale")))
	return store
}

func TestDiffService_Run(t *testing.T) {
	store := seededStore(t)
	renderer := &fakeRenderer{}
	pub := &fakePublisher{}
	svc := NewDiffService(store, renderer, pub)
	ctx := context.Background()

	res, err := svc.Run(ctx, DiffRequest{
		BasePath:    "a.png",
		CurrentPath: "b.png",
		OutputPath:  "xx.jpg",
		Annotations: entity.DefaultAnnotations(),
	})
	require.NoError(t, err)
	require.Equal(t, "xx.jpg", res.Name)
	require.Equal(t, []byte("A"), renderer.base)
	require.Equal(t, []byte("B"), renderer.current)
	require.Len(t, renderer.ann.Boxes, 4)
	require.Nil(t, renderer.ann.Keypoints)

	out, err := store.Read(ctx, "xx.jpg")
	require.NoError(t, err)
	require.Equal(t, []byte("rendered"), out)

	require.Len(t, pub.published, 1)
}

func TestDiffService_Run_WithoutPublisher(t *testing.T) {
	svc := NewDiffService(seededStore(t), &fakeRenderer{}, nil)

	res, err := svc.Run(context.Background(), DiffRequest{BasePath: "a.png", CurrentPath: "b.png", OutputPath: "out.jpg"})
	require.NoError(t, err)
	require.Equal(t, 3, res.Channels)
}

func TestDiffService_Run_MissingInput(t *testing.T) {
	store := seededStore(t)
	svc := NewDiffService(store, &fakeRenderer{}, nil)

	_, err := svc.Run(context.Background(), DiffRequest{BasePath: "a.png", CurrentPath: "missing.png", OutputPath: "xx.jpg"})
	require.ErrorIs(t, err, os.ErrNotExist)

	out, err := store.Read(context.Background(), "xx.jpg")
	require.NoError(t, err)
	require.Equal(t, []byte("stale"), out)
}

func TestDiffService_Run_RenderError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewDiffService(seededStore(t), &fakeRenderer{err: boom}, nil)

	_, err := svc.Run(context.Background(), DiffRequest{BasePath: "a.png", CurrentPath: "b.png", OutputPath: "xx.jpg"})
	require.ErrorIs(t, err, boom)
}

func TestDiffService_Run_PublishError(t *testing.T) {
	boom := errors.New("offline")
	svc := NewDiffService(seededStore(t), &fakeRenderer{}, &fakePublisher{err: boom})

	_, err := svc.Run(context.Background(), DiffRequest{BasePath: "a.png", CurrentPath: "b.png", OutputPath: "xx.jpg"})
	require.ErrorIs(t, err, boom)
}

func TestDiffService_Run_NotConfigured(t *testing.T) {
	svc := NewDiffService(seededStore(t), nil, nil)
	_, err := svc.Run(context.Background(), DiffRequest{OutputPath: "xx.jpg"})
	require.Error(t, err)
}
