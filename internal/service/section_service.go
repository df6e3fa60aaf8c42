// FILE: internal/service/section_service.go
package service

import (
	"context"
	"time"

	"ai-docauthor-be/internal/dto"
	"ai-docauthor-be/internal/entity"
	"ai-docauthor-be/internal/pkg/logger"
	"ai-docauthor-be/internal/pkg/serverutils"
	"ai-docauthor-be/internal/repository/memory"
	"ai-docauthor-be/pkg/docgen/orchestrator"
	"ai-docauthor-be/pkg/docgen/section"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISectionService interface {
	Add(ctx context.Context, req *dto.AddSectionRequest) (*dto.SectionDTO, error)
	Update(ctx context.Context, req *dto.UpdateSectionRequest) (*dto.SectionDTO, error)
	Delete(ctx context.Context, req *dto.DeleteSectionRequest) error
	Generate(ctx context.Context, req *dto.GenerateSectionRequest) (*dto.SectionDTO, error)
	Improve(ctx context.Context, req *dto.ImproveSectionRequest) (*dto.SectionDTO, error)
	GenerateAll(ctx context.Context, docId uuid.UUID) (*dto.GenerateAllResponse, error)
	SelectRevision(ctx context.Context, req *dto.SelectRevisionRequest) (*dto.SectionDTO, error)
}

type sectionService struct {
	repo         *memory.DocumentRepository
	generator    *section.Generator
	orchestrator *orchestrator.Orchestrator
	passes       int
	logger       logger.ILogger
}

func NewSectionService(
	repo *memory.DocumentRepository,
	generator *section.Generator,
	orch *orchestrator.Orchestrator,
	passes int,
	log logger.ILogger,
) ISectionService {
	return &sectionService{
		repo:         repo,
		generator:    generator,
		orchestrator: orch,
		passes:       passes,
		logger:       log,
	}
}

// findSection resolves a section id within a document. Callers hold the
// document lock.
func findSection(doc *entity.Document, sectionId string) (*entity.Section, error) {
	id, err := uuid.Parse(sectionId)
	if err != nil {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, "invalid section id")
	}
	sec := doc.SectionByID(id)
	if sec == nil {
		return nil, serverutils.NewApiError(fiber.StatusNotFound, "section not found")
	}
	return sec, nil
}

// Add appends a manually authored section after the planned ones.
func (s *sectionService) Add(_ context.Context, req *dto.AddSectionRequest) (*dto.SectionDTO, error) {
	doc, err := findDocument(s.repo, req.DocId)
	if err != nil {
		return nil, err
	}

	sec := &entity.Section{
		Id:              uuid.New(),
		Title:           req.Title,
		Description:     req.Description,
		KeyPoints:       req.KeyPoints,
		EstimatedLength: req.Length,
		SourceOption:    entity.SourceOptionAll,
		SelectedSources: []string{},
		CurrentRevision: -1,
	}

	doc.Lock()
	doc.Sections = append(doc.Sections, sec)
	result := mapSection(sec)
	doc.Unlock()

	s.save(doc)
	return &result, nil
}

func (s *sectionService) Update(_ context.Context, req *dto.UpdateSectionRequest) (*dto.SectionDTO, error) {
	doc, err := findDocument(s.repo, req.DocId)
	if err != nil {
		return nil, err
	}

	doc.Lock()
	sec, err := findSection(doc, req.SectionId)
	if err != nil {
		doc.Unlock()
		return nil, err
	}

	if req.Title != nil {
		sec.Title = *req.Title
	}
	if req.Description != nil {
		sec.Description = *req.Description
	}
	if req.Content != nil {
		// Manual edits enter the revision log so evaluation sees them.
		sec.AppendRevision(*req.Content)
	}
	if req.SourceOption != nil {
		sec.SourceOption = *req.SourceOption
	}
	if req.SelectedSources != nil {
		sec.SelectedSources = req.SelectedSources
	}
	if req.Temperature != nil {
		sec.Temperature = req.Temperature
	}
	if req.Length != nil {
		sec.EstimatedLength = *req.Length
	}

	result := mapSection(sec)
	doc.Unlock()

	s.save(doc)
	return &result, nil
}

// Delete removes a section. Removing a section never touches the content
// or revision history of its neighbors.
func (s *sectionService) Delete(_ context.Context, req *dto.DeleteSectionRequest) error {
	doc, err := findDocument(s.repo, req.DocId)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(req.SectionId)
	if err != nil {
		return serverutils.NewApiError(fiber.StatusBadRequest, "invalid section id")
	}

	doc.Lock()
	removed := doc.RemoveSection(id)
	doc.Unlock()
	if !removed {
		return serverutils.NewApiError(fiber.StatusNotFound, "section not found")
	}

	s.save(doc)
	return nil
}

func (s *sectionService) Generate(ctx context.Context, req *dto.GenerateSectionRequest) (*dto.SectionDTO, error) {
	doc, err := findDocument(s.repo, req.DocId)
	if err != nil {
		return nil, err
	}

	doc.Lock()
	sec, err := findSection(doc, req.SectionId)
	doc.Unlock()
	if err != nil {
		return nil, err
	}
	if s.orchestrator.Running(doc.Id) {
		return nil, serverutils.NewApiError(fiber.StatusConflict, "a generation run is already in progress for this document")
	}

	if _, err := s.generator.Generate(ctx, doc, sec); err != nil {
		return nil, err
	}

	doc.Lock()
	result := mapSection(sec)
	doc.Unlock()

	s.save(doc)
	return &result, nil
}

// Improve regenerates one section's content guided by the caller's
// improvement notes. The result lands in the revision log like any other
// generation.
func (s *sectionService) Improve(ctx context.Context, req *dto.ImproveSectionRequest) (*dto.SectionDTO, error) {
	doc, err := findDocument(s.repo, req.DocId)
	if err != nil {
		return nil, err
	}

	doc.Lock()
	sec, err := findSection(doc, req.SectionId)
	doc.Unlock()
	if err != nil {
		return nil, err
	}
	if s.orchestrator.Running(doc.Id) {
		return nil, serverutils.NewApiError(fiber.StatusConflict, "a generation run is already in progress for this document")
	}

	if _, err := s.generator.Improve(ctx, doc, sec, req.Improvements); err != nil {
		return nil, err
	}

	doc.Lock()
	result := mapSection(sec)
	doc.Unlock()

	s.save(doc)
	return &result, nil
}

// GenerateAll starts a background run over every section. Progress is
// delivered over the websocket stream; the HTTP reply only acknowledges
// the start.
func (s *sectionService) GenerateAll(_ context.Context, docId uuid.UUID) (*dto.GenerateAllResponse, error) {
	doc, err := findDocument(s.repo, docId)
	if err != nil {
		return nil, err
	}

	doc.Lock()
	empty := len(doc.Sections) == 0
	doc.Unlock()
	if empty {
		return nil, serverutils.NewApiError(fiber.StatusConflict, "document has no sections, finalize a plan first")
	}
	if s.orchestrator.Running(doc.Id) {
		return nil, serverutils.NewApiError(fiber.StatusConflict, "a generation run is already in progress for this document")
	}

	go func() {
		// Detached from the request context; the run outlives the reply.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		if err := s.orchestrator.GenerateAll(ctx, doc, s.passes); err != nil {
			s.logger.Error("SectionService", "Generate-all run failed", map[string]interface{}{
				"document_id": doc.Id,
				"error":       err.Error(),
			})
		}
		s.save(doc)
	}()

	return &dto.GenerateAllResponse{DocId: doc.Id, Started: true}, nil
}

func (s *sectionService) SelectRevision(_ context.Context, req *dto.SelectRevisionRequest) (*dto.SectionDTO, error) {
	doc, err := findDocument(s.repo, req.DocId)
	if err != nil {
		return nil, err
	}

	doc.Lock()
	sec, err := findSection(doc, req.SectionId)
	if err != nil {
		doc.Unlock()
		return nil, err
	}
	if err := sec.SelectRevision(req.Revision); err != nil {
		doc.Unlock()
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, err.Error())
	}
	result := mapSection(sec)
	doc.Unlock()

	s.save(doc)
	return &result, nil
}

func (s *sectionService) save(doc *entity.Document) {
	doc.Lock()
	now := time.Now()
	doc.UpdatedAt = &now
	doc.Unlock()
	s.repo.Save(doc)
}
