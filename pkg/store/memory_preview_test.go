package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPreviewStore(t *testing.T) {
	s := NewMemoryPreviewStore(time.Minute)
	ctx := context.Background()

	preview := &Preview{
		Title: "Launch Note",
		Sections: []PreviewSection{
			{Title: "Intro", Content: "# Hello"},
		},
		CreatedAt: time.Now(),
	}

	id, err := s.Put(ctx, preview)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Launch Note", got.Title)
	require.Len(t, got.Sections, 1)
	assert.Equal(t, "# Hello", got.Sections[0].Content)
}

func TestMemoryPreviewStoreUnknownId(t *testing.T) {
	s := NewMemoryPreviewStore(time.Minute)
	_, err := s.Get(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrPreviewNotFound)
}

func TestMemoryPreviewStoreExpiry(t *testing.T) {
	s := NewMemoryPreviewStore(10 * time.Millisecond)
	id, err := s.Put(context.Background(), &Preview{Title: "short lived"})
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)

	_, err = s.Get(context.Background(), id)
	assert.ErrorIs(t, err, ErrPreviewNotFound)
}

func TestMemoryPreviewStoreDistinctIds(t *testing.T) {
	s := NewMemoryPreviewStore(time.Minute)
	ctx := context.Background()

	a, err := s.Put(ctx, &Preview{Title: "a"})
	require.NoError(t, err)
	b, err := s.Put(ctx, &Preview{Title: "b"})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
