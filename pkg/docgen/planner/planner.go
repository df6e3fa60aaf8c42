package planner

import (
	"context"
	"errors"
	"log"
	"strings"

	"ai-docauthor-be/internal/entity"
	"ai-docauthor-be/pkg/ai"
	"ai-docauthor-be/pkg/docgen/classifier"
)

// State of the planning flow for one document.
type State string

const (
	StateEmpty     State = "empty"
	StateDrafting  State = "drafting"
	StateFinalized State = "finalized"
)

var (
	ErrEmptyFeedback = errors.New("plan feedback must not be empty")
	ErrNoPlan        = errors.New("no plan to operate on")
	ErrPlanFinalized = errors.New("plan already finalized")
)

// Planner drives the outline flow: draft from (title, purpose), refine with
// free-text feedback, finalize into structured sections, reset.
type Planner struct {
	provider   ai.Provider
	classifier *classifier.Classifier
	logger     *log.Logger
}

func New(provider ai.Provider, cls *classifier.Classifier, logger *log.Logger) *Planner {
	return &Planner{
		provider:   provider,
		classifier: cls,
		logger:     logger,
	}
}

// StateOf reports where a document sits in the Empty -> Drafting ->
// Finalized loop. Refining is not a distinct stored state: a drafted plan
// accepts feedback until finalized.
func StateOf(doc *entity.Document) State {
	switch {
	case doc.Plan.IsPlanFinalized:
		return StateFinalized
	case doc.Plan.CurrentPlan != "":
		return StateDrafting
	default:
		return StateEmpty
	}
}

// GeneratePlan classifies the document and drafts the initial outline.
// On provider failure the plan state is unchanged apart from clearing the
// in-progress flag, so the caller can retry.
func (p *Planner) GeneratePlan(ctx context.Context, doc *entity.Document) (string, error) {
	doc.Lock()
	defer doc.Unlock()

	doc.Plan.IsPlanning = true
	defer func() { doc.Plan.IsPlanning = false }()

	cls, err := p.classifier.Classify(ctx, doc.Title, doc.Purpose)
	if err != nil {
		return "", err
	}
	doc.Type = cls.Type

	plan, err := p.provider.GenerateOutline(ctx, ai.OutlineRequest{
		Title:       doc.Title,
		Purpose:     doc.Purpose,
		References:  doc.CompletedResourceNames(),
		DataSources: classifier.TemplateHints(cls.Type),
	})
	if err != nil {
		return "", err
	}

	doc.Plan.CurrentPlan = plan
	p.logger.Printf("[PLANNER] Drafted plan for %q (%d characters)", doc.Title, len(plan))
	return plan, nil
}

// RefinePlan replaces the current plan text with a refined version. Empty
// feedback is rejected caller-side and never reaches the provider.
func (p *Planner) RefinePlan(ctx context.Context, doc *entity.Document, feedback string) (string, error) {
	if strings.TrimSpace(feedback) == "" {
		return "", ErrEmptyFeedback
	}

	doc.Lock()
	defer doc.Unlock()

	if StateOf(doc) != StateDrafting {
		return "", ErrNoPlan
	}

	doc.Plan.IsPlanning = true
	defer func() { doc.Plan.IsPlanning = false }()

	refined, err := p.provider.RefineOutline(ctx, doc.Plan.CurrentPlan, feedback)
	if err != nil {
		// Last good plan text survives a failed refine.
		return "", err
	}

	doc.Plan.CurrentPlan = refined
	return refined, nil
}

// FinalizePlan converts the approved plan into section state and replaces
// the document's section list wholesale. Prior unsaved section edits are
// discarded; this is the documented data-loss point of the flow. The
// transition is irreversible except via Reset.
func (p *Planner) FinalizePlan(ctx context.Context, doc *entity.Document) ([]*entity.Section, error) {
	doc.Lock()
	defer doc.Unlock()

	switch StateOf(doc) {
	case StateEmpty:
		return nil, ErrNoPlan
	case StateFinalized:
		return nil, ErrPlanFinalized
	}

	doc.Plan.IsPlanning = true
	defer func() { doc.Plan.IsPlanning = false }()

	descriptors, err := p.provider.FinalizeOutline(ctx, doc.Plan.CurrentPlan)
	if err != nil {
		return nil, err
	}

	sections := make([]*entity.Section, 0, len(descriptors))
	for _, desc := range descriptors {
		sections = append(sections, entity.NewSectionFromDescriptor(desc))
	}

	doc.Sections = sections
	doc.Plan.IsPlanFinalized = true
	p.logger.Printf("[PLANNER] Finalized plan for %q into %d sections", doc.Title, len(sections))
	return sections, nil
}

// Reset clears the planning state only. Sections created by an earlier
// finalize survive.
func (p *Planner) Reset(doc *entity.Document) {
	doc.Lock()
	defer doc.Unlock()
	doc.Plan = entity.PlanState{}
}
