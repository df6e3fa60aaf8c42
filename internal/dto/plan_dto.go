package dto

import "github.com/google/uuid"

type GeneratePlanRequest struct {
	DocId uuid.UUID `json:"-"`
}

type RefinePlanRequest struct {
	DocId    uuid.UUID `json:"-"`
	Feedback string    `json:"feedback" validate:"required"`
}

type PlanResponse struct {
	DocId           uuid.UUID `json:"doc_id"`
	DocumentType    string    `json:"document_type,omitempty"`
	Plan            string    `json:"plan"`
	PlanState       string    `json:"plan_state"`
	IsPlanFinalized bool      `json:"is_plan_finalized"`
}

type FinalizePlanResponse struct {
	DocId    uuid.UUID    `json:"doc_id"`
	Sections []SectionDTO `json:"sections"`
}
