// FILE: internal/service/evaluation_service.go
package service

import (
	"context"
	"errors"
	"time"

	"ai-docauthor-be/internal/dto"
	"ai-docauthor-be/internal/pkg/logger"
	"ai-docauthor-be/internal/pkg/serverutils"
	"ai-docauthor-be/internal/repository/memory"
	"ai-docauthor-be/pkg/docgen/evaluation"
	"ai-docauthor-be/pkg/docgen/orchestrator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IEvaluationService interface {
	Evaluate(ctx context.Context, docId uuid.UUID) (*dto.EvaluationResponse, error)
	Improve(ctx context.Context, docId uuid.UUID) (*dto.ImproveDocumentResponse, error)
}

type evaluationService struct {
	repo         *memory.DocumentRepository
	evaluator    *evaluation.Evaluator
	orchestrator *orchestrator.Orchestrator
	logger       logger.ILogger
}

func NewEvaluationService(
	repo *memory.DocumentRepository,
	evaluator *evaluation.Evaluator,
	orch *orchestrator.Orchestrator,
	log logger.ILogger,
) IEvaluationService {
	return &evaluationService{
		repo:         repo,
		evaluator:    evaluator,
		orchestrator: orch,
		logger:       log,
	}
}

func (s *evaluationService) Evaluate(ctx context.Context, docId uuid.UUID) (*dto.EvaluationResponse, error) {
	doc, err := findDocument(s.repo, docId)
	if err != nil {
		return nil, err
	}

	result, err := s.evaluator.Evaluate(ctx, doc)
	if err != nil {
		if errors.Is(err, evaluation.ErrNoSections) {
			return nil, serverutils.NewApiError(fiber.StatusConflict, err.Error())
		}
		return nil, err
	}

	return &dto.EvaluationResponse{
		DocId:            doc.Id,
		OverallScore:     result.OverallScore,
		Categories:       result.Categories,
		Improvements:     result.Improvements,
		DetailedFeedback: result.DetailedFeedback,
	}, nil
}

// Improve evaluates the document, then applies the resulting improvement
// list to every section in the background. Per-section progress and the
// final re-evaluation score arrive over the websocket stream.
func (s *evaluationService) Improve(ctx context.Context, docId uuid.UUID) (*dto.ImproveDocumentResponse, error) {
	doc, err := findDocument(s.repo, docId)
	if err != nil {
		return nil, err
	}
	if s.orchestrator.Running(doc.Id) {
		return nil, serverutils.NewApiError(fiber.StatusConflict, "a generation run is already in progress for this document")
	}

	result, err := s.evaluator.Evaluate(ctx, doc)
	if err != nil {
		if errors.Is(err, evaluation.ErrNoSections) {
			return nil, serverutils.NewApiError(fiber.StatusConflict, err.Error())
		}
		return nil, err
	}

	go func() {
		runCtx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		if _, err := s.orchestrator.ImproveAll(runCtx, doc, result.Improvements); err != nil {
			s.logger.Error("EvaluationService", "Improvement run failed", map[string]interface{}{
				"document_id": doc.Id,
				"error":       err.Error(),
			})
		}

		doc.Lock()
		now := time.Now()
		doc.UpdatedAt = &now
		doc.Unlock()
		s.repo.Save(doc)
	}()

	return &dto.ImproveDocumentResponse{DocId: doc.Id, Started: true}, nil
}
