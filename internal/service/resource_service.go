// FILE: internal/service/resource_service.go
package service

import (
	"context"
	"io"
	"time"

	"ai-docauthor-be/internal/dto"
	"ai-docauthor-be/internal/entity"
	"ai-docauthor-be/internal/pkg/logger"
	"ai-docauthor-be/internal/repository/memory"
	"ai-docauthor-be/pkg/ingestion"

	"github.com/google/uuid"
)

type IResourceService interface {
	List(ctx context.Context, docId uuid.UUID) ([]dto.ResourceDTO, error)
	UploadFile(ctx context.Context, docId uuid.UUID, filename string, r io.Reader) (*dto.ResourceDTO, error)
	AddURL(ctx context.Context, req *dto.AddURLResourceRequest) (*dto.ResourceDTO, error)
	Delete(ctx context.Context, req *dto.DeleteResourceRequest) error
}

type resourceService struct {
	repo      *memory.DocumentRepository
	ingestion *ingestion.Client
	logger    logger.ILogger
}

func NewResourceService(repo *memory.DocumentRepository, ing *ingestion.Client, log logger.ILogger) IResourceService {
	return &resourceService{repo: repo, ingestion: ing, logger: log}
}

func (s *resourceService) List(_ context.Context, docId uuid.UUID) ([]dto.ResourceDTO, error) {
	doc, err := findDocument(s.repo, docId)
	if err != nil {
		return nil, err
	}
	doc.Lock()
	resources := mapResources(doc.Resources)
	doc.Unlock()
	return resources, nil
}

func (s *resourceService) UploadFile(ctx context.Context, docId uuid.UUID, filename string, r io.Reader) (*dto.ResourceDTO, error) {
	doc, err := findDocument(s.repo, docId)
	if err != nil {
		return nil, err
	}

	processed, err := s.ingestion.ProcessFile(ctx, filename, r)
	if err != nil {
		return nil, err
	}

	return s.attach(doc, processed), nil
}

func (s *resourceService) AddURL(ctx context.Context, req *dto.AddURLResourceRequest) (*dto.ResourceDTO, error) {
	doc, err := findDocument(s.repo, req.DocId)
	if err != nil {
		return nil, err
	}

	processed, err := s.ingestion.ProcessURL(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	return s.attach(doc, processed), nil
}

// Delete detaches the resource and removes its vectors from the ingestion
// collaborator. Unknown resource ids succeed so repeated deletes are
// idempotent; the collaborator treats its own 404 the same way.
func (s *resourceService) Delete(ctx context.Context, req *dto.DeleteResourceRequest) error {
	doc, err := findDocument(s.repo, req.DocId)
	if err != nil {
		return err
	}

	doc.Lock()
	attached := false
	for _, r := range doc.Resources {
		if r.Id == req.ResourceId {
			attached = true
			break
		}
	}
	doc.Unlock()
	if !attached {
		return nil
	}

	if err := s.ingestion.Delete(ctx, req.ResourceId); err != nil {
		return err
	}

	doc.Lock()
	for i, r := range doc.Resources {
		if r.Id == req.ResourceId {
			doc.Resources = append(doc.Resources[:i], doc.Resources[i+1:]...)
			break
		}
	}
	doc.Unlock()
	s.save(doc)
	return nil
}

func (s *resourceService) attach(doc *entity.Document, processed *ingestion.ProcessedDocument) *dto.ResourceDTO {
	resource := &entity.Resource{
		Id:        processed.Id,
		Name:      processed.Name,
		Status:    processed.Status,
		VectorIds: processed.VectorIds,
		CreatedAt: time.Now(),
	}
	doc.Lock()
	doc.Resources = append(doc.Resources, resource)
	doc.Unlock()
	s.save(doc)

	s.logger.Info("ResourceService", "Resource attached", map[string]interface{}{
		"document_id": doc.Id,
		"resource":    resource.Name,
		"status":      resource.Status,
	})

	return &dto.ResourceDTO{
		Id:        resource.Id,
		Name:      resource.Name,
		Status:    resource.Status,
		CreatedAt: resource.CreatedAt,
	}
}

func (s *resourceService) save(doc *entity.Document) {
	doc.Lock()
	now := time.Now()
	doc.UpdatedAt = &now
	doc.Unlock()
	s.repo.Save(doc)
}
