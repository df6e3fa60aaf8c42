// FILE: internal/service/preview_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai-docauthor-be/internal/dto"
	"ai-docauthor-be/internal/pkg/serverutils"
	"ai-docauthor-be/pkg/markdown"
	"ai-docauthor-be/pkg/store"

	"github.com/gofiber/fiber/v2"
)

type IPreviewService interface {
	Create(ctx context.Context, req *dto.CreatePreviewRequest) (*dto.CreatePreviewResponse, error)
	Show(ctx context.Context, previewId string) (*dto.ShowPreviewResponse, error)
}

type previewService struct {
	store   store.PreviewStore
	baseURL string
}

func NewPreviewService(st store.PreviewStore, baseURL string) IPreviewService {
	return &previewService{store: st, baseURL: baseURL}
}

// Create stores the submitted title and section content as a write-once
// snapshot. Later edits to the document need a new preview.
func (s *previewService) Create(ctx context.Context, req *dto.CreatePreviewRequest) (*dto.CreatePreviewResponse, error) {
	sections := make([]store.PreviewSection, 0, len(req.Sections))
	for _, sec := range req.Sections {
		sections = append(sections, store.PreviewSection{
			Title:   sec.Title,
			Content: sec.Content,
		})
	}

	id, err := s.store.Put(ctx, &store.Preview{
		Title:     req.Title,
		Sections:  sections,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreatePreviewResponse{
		PreviewId: id,
		URL:       fmt.Sprintf("%s/api/preview/v1/%s", s.baseURL, id),
	}, nil
}

func (s *previewService) Show(ctx context.Context, previewId string) (*dto.ShowPreviewResponse, error) {
	preview, err := s.store.Get(ctx, previewId)
	if err != nil {
		if errors.Is(err, store.ErrPreviewNotFound) {
			return nil, serverutils.NewApiError(fiber.StatusNotFound, "preview not found or expired")
		}
		return nil, err
	}

	sections := make([]dto.PreviewSectionDTO, 0, len(preview.Sections))
	for _, sec := range preview.Sections {
		html, err := markdown.ToHTML(sec.Content)
		if err != nil {
			return nil, err
		}
		sections = append(sections, dto.PreviewSectionDTO{
			Title: sec.Title,
			HTML:  html,
		})
	}

	return &dto.ShowPreviewResponse{
		Title:    preview.Title,
		Sections: sections,
	}, nil
}
