// FILE: internal/service/plan_service.go
package service

import (
	"context"
	"errors"
	"time"

	"ai-docauthor-be/internal/dto"
	"ai-docauthor-be/internal/entity"
	"ai-docauthor-be/internal/pkg/serverutils"
	"ai-docauthor-be/internal/repository/memory"
	"ai-docauthor-be/pkg/docgen/planner"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPlanService interface {
	Generate(ctx context.Context, docId uuid.UUID) (*dto.PlanResponse, error)
	Refine(ctx context.Context, req *dto.RefinePlanRequest) (*dto.PlanResponse, error)
	Finalize(ctx context.Context, docId uuid.UUID) (*dto.FinalizePlanResponse, error)
	Reset(ctx context.Context, docId uuid.UUID) (*dto.PlanResponse, error)
}

type planService struct {
	repo    *memory.DocumentRepository
	planner *planner.Planner
}

func NewPlanService(repo *memory.DocumentRepository, p *planner.Planner) IPlanService {
	return &planService{repo: repo, planner: p}
}

func (s *planService) Generate(ctx context.Context, docId uuid.UUID) (*dto.PlanResponse, error) {
	doc, err := findDocument(s.repo, docId)
	if err != nil {
		return nil, err
	}
	doc.Lock()
	finalized := planner.StateOf(doc) == planner.StateFinalized
	doc.Unlock()
	if finalized {
		return nil, serverutils.NewApiError(fiber.StatusConflict, "plan already finalized, reset it first")
	}

	if _, err := s.planner.GeneratePlan(ctx, doc); err != nil {
		return nil, err
	}

	s.touch(doc)
	return planResponse(doc), nil
}

func (s *planService) Refine(ctx context.Context, req *dto.RefinePlanRequest) (*dto.PlanResponse, error) {
	doc, err := findDocument(s.repo, req.DocId)
	if err != nil {
		return nil, err
	}

	if _, err := s.planner.RefinePlan(ctx, doc, req.Feedback); err != nil {
		return nil, mapPlanError(err)
	}

	s.touch(doc)
	return planResponse(doc), nil
}

func (s *planService) Finalize(ctx context.Context, docId uuid.UUID) (*dto.FinalizePlanResponse, error) {
	doc, err := findDocument(s.repo, docId)
	if err != nil {
		return nil, err
	}

	sections, err := s.planner.FinalizePlan(ctx, doc)
	if err != nil {
		return nil, mapPlanError(err)
	}

	s.touch(doc)
	doc.Lock()
	mapped := mapSections(sections)
	doc.Unlock()
	return &dto.FinalizePlanResponse{
		DocId:    doc.Id,
		Sections: mapped,
	}, nil
}

func (s *planService) Reset(_ context.Context, docId uuid.UUID) (*dto.PlanResponse, error) {
	doc, err := findDocument(s.repo, docId)
	if err != nil {
		return nil, err
	}

	s.planner.Reset(doc)
	s.touch(doc)
	return planResponse(doc), nil
}

func (s *planService) touch(doc *entity.Document) {
	doc.Lock()
	now := time.Now()
	doc.UpdatedAt = &now
	doc.Unlock()
	s.repo.Save(doc)
}

// mapPlanError translates planning-state violations into client errors;
// provider failures pass through to the 500 handler.
func mapPlanError(err error) error {
	switch {
	case errors.Is(err, planner.ErrEmptyFeedback):
		return serverutils.NewApiError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, planner.ErrNoPlan):
		return serverutils.NewApiError(fiber.StatusConflict, err.Error())
	case errors.Is(err, planner.ErrPlanFinalized):
		return serverutils.NewApiError(fiber.StatusConflict, err.Error())
	default:
		return err
	}
}

func planResponse(doc *entity.Document) *dto.PlanResponse {
	doc.Lock()
	defer doc.Unlock()
	return &dto.PlanResponse{
		DocId:           doc.Id,
		DocumentType:    string(doc.Type),
		Plan:            doc.Plan.CurrentPlan,
		PlanState:       string(planner.StateOf(doc)),
		IsPlanFinalized: doc.Plan.IsPlanFinalized,
	}
}
