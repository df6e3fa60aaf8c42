// FILE: internal/service/document_service.go
package service

import (
	"context"
	"time"

	"ai-docauthor-be/internal/dto"
	"ai-docauthor-be/internal/entity"
	"ai-docauthor-be/internal/pkg/serverutils"
	"ai-docauthor-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDocumentService interface {
	Create(ctx context.Context, req *dto.CreateDocumentRequest) (*dto.CreateDocumentResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowDocumentResponse, error)
	Update(ctx context.Context, req *dto.UpdateDocumentRequest) (*dto.ShowDocumentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type documentService struct {
	repo               *memory.DocumentRepository
	defaultTemperature float64
	defaultLength      string
}

func NewDocumentService(repo *memory.DocumentRepository, defaultTemperature float64, defaultLength string) IDocumentService {
	return &documentService{
		repo:               repo,
		defaultTemperature: defaultTemperature,
		defaultLength:      defaultLength,
	}
}

// findDocument is shared by every service that resolves a session id.
func findDocument(repo *memory.DocumentRepository, id uuid.UUID) (*entity.Document, error) {
	doc, found := repo.Get(id)
	if !found {
		return nil, serverutils.NewApiError(fiber.StatusNotFound, "document not found")
	}
	return doc, nil
}

func (s *documentService) Create(_ context.Context, req *dto.CreateDocumentRequest) (*dto.CreateDocumentResponse, error) {
	doc := &entity.Document{
		Id:      uuid.New(),
		Title:   req.Title,
		Purpose: req.Purpose,
		Settings: entity.DocumentSettings{
			DefaultTemperature: s.defaultTemperature,
			DefaultLength:      s.defaultLength,
		},
		Sections:  []*entity.Section{},
		Resources: []*entity.Resource{},
		CreatedAt: time.Now(),
	}
	if req.DefaultTemperature != nil {
		doc.Settings.DefaultTemperature = *req.DefaultTemperature
	}
	if req.DefaultLength != "" {
		doc.Settings.DefaultLength = req.DefaultLength
	}

	s.repo.Save(doc)
	return &dto.CreateDocumentResponse{Id: doc.Id}, nil
}

func (s *documentService) Show(_ context.Context, id uuid.UUID) (*dto.ShowDocumentResponse, error) {
	doc, err := findDocument(s.repo, id)
	if err != nil {
		return nil, err
	}
	return mapDocument(doc), nil
}

func (s *documentService) Update(_ context.Context, req *dto.UpdateDocumentRequest) (*dto.ShowDocumentResponse, error) {
	doc, err := findDocument(s.repo, req.Id)
	if err != nil {
		return nil, err
	}

	doc.Lock()
	if req.Title != "" {
		doc.Title = req.Title
	}
	if req.Purpose != "" {
		doc.Purpose = req.Purpose
	}
	if req.DefaultTemperature != nil {
		doc.Settings.DefaultTemperature = *req.DefaultTemperature
	}
	if req.DefaultLength != "" {
		doc.Settings.DefaultLength = req.DefaultLength
	}

	now := time.Now()
	doc.UpdatedAt = &now
	doc.Unlock()

	s.repo.Save(doc)
	return mapDocument(doc), nil
}

// Delete removes the session. Deleting an unknown id is a no-op so clients
// can retry safely.
func (s *documentService) Delete(_ context.Context, id uuid.UUID) error {
	s.repo.Delete(id)
	return nil
}

// mapDocument takes the document lock itself; callers must not hold it.
func mapDocument(doc *entity.Document) *dto.ShowDocumentResponse {
	doc.Lock()
	defer doc.Unlock()
	return &dto.ShowDocumentResponse{
		Id:      doc.Id,
		Title:   doc.Title,
		Purpose: doc.Purpose,
		Type:    string(doc.Type),
		Settings: dto.DocumentSettingsDTO{
			DefaultTemperature: doc.Settings.DefaultTemperature,
			DefaultLength:      doc.Settings.DefaultLength,
		},
		Plan: dto.PlanStateDTO{
			CurrentPlan:     doc.Plan.CurrentPlan,
			IsPlanning:      doc.Plan.IsPlanning,
			IsPlanFinalized: doc.Plan.IsPlanFinalized,
		},
		Sections:  mapSections(doc.Sections),
		Resources: mapResources(doc.Resources),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
