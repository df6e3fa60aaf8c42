package dto

import (
	"ai-docauthor-be/pkg/ai"

	"github.com/google/uuid"
)

type EvaluateDocumentRequest struct {
	DocId uuid.UUID `json:"-"`
}

type EvaluationResponse struct {
	DocId            uuid.UUID               `json:"doc_id"`
	OverallScore     int                     `json:"overall_score"`
	Categories       ai.EvaluationCategories `json:"categories"`
	Improvements     []string                `json:"improvements"`
	DetailedFeedback string                  `json:"detailed_feedback"`
}

type ImproveDocumentRequest struct {
	DocId uuid.UUID `json:"-"`
}

type ImproveDocumentResponse struct {
	DocId   uuid.UUID `json:"doc_id"`
	Started bool      `json:"started"`
}
