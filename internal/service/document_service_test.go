package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-docauthor-be/internal/dto"
	"ai-docauthor-be/internal/pkg/serverutils"
	"ai-docauthor-be/internal/repository/memory"
)

func TestDocumentServiceCreateAndShow(t *testing.T) {
	repo := memory.NewDocumentRepository(time.Hour)
	svc := NewDocumentService(repo, 0.7, "medium")
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateDocumentRequest{
		Title:   "Launch Note",
		Purpose: "Announce v2",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.Id)

	shown, err := svc.Show(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Launch Note", shown.Title)
	assert.Equal(t, 0.7, shown.Settings.DefaultTemperature)
	assert.Equal(t, "medium", shown.Settings.DefaultLength)
	assert.Empty(t, shown.Sections)
	assert.False(t, shown.Plan.IsPlanFinalized)
}

func TestDocumentServiceCreateWithOverrides(t *testing.T) {
	repo := memory.NewDocumentRepository(time.Hour)
	svc := NewDocumentService(repo, 0.7, "medium")

	temp := 0.3
	created, err := svc.Create(context.Background(), &dto.CreateDocumentRequest{
		Title:              "T",
		Purpose:            "P",
		DefaultTemperature: &temp,
		DefaultLength:      "long",
	})
	require.NoError(t, err)

	shown, err := svc.Show(context.Background(), created.Id)
	require.NoError(t, err)
	assert.Equal(t, 0.3, shown.Settings.DefaultTemperature)
	assert.Equal(t, "long", shown.Settings.DefaultLength)
}

func TestDocumentServiceShowUnknown(t *testing.T) {
	repo := memory.NewDocumentRepository(time.Hour)
	svc := NewDocumentService(repo, 0.7, "medium")

	_, err := svc.Show(context.Background(), uuid.New())
	require.Error(t, err)

	var apiErr *serverutils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, fiber.StatusNotFound, apiErr.Code)
}

func TestDocumentServiceUpdate(t *testing.T) {
	repo := memory.NewDocumentRepository(time.Hour)
	svc := NewDocumentService(repo, 0.7, "medium")
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateDocumentRequest{Title: "Old", Purpose: "P"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, &dto.UpdateDocumentRequest{Id: created.Id, Title: "New"})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "P", updated.Purpose, "untouched fields survive")
	assert.NotNil(t, updated.UpdatedAt)
}

func TestDocumentServiceDeleteIdempotent(t *testing.T) {
	repo := memory.NewDocumentRepository(time.Hour)
	svc := NewDocumentService(repo, 0.7, "medium")
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateDocumentRequest{Title: "T", Purpose: "P"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.Id))
	require.NoError(t, svc.Delete(ctx, created.Id), "double delete succeeds")
	require.NoError(t, svc.Delete(ctx, uuid.New()), "unknown id succeeds")

	_, err = svc.Show(ctx, created.Id)
	assert.Error(t, err)
}
