package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDocumentRequest struct {
	Title              string   `json:"title" validate:"required"`
	Purpose            string   `json:"purpose" validate:"required"`
	DefaultTemperature *float64 `json:"default_temperature,omitempty" validate:"omitempty,gte=0,lte=1"`
	DefaultLength      string   `json:"default_length,omitempty"`
}

type CreateDocumentResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateDocumentRequest struct {
	Id                 uuid.UUID `json:"-"`
	Title              string    `json:"title,omitempty"`
	Purpose            string    `json:"purpose,omitempty"`
	DefaultTemperature *float64  `json:"default_temperature,omitempty" validate:"omitempty,gte=0,lte=1"`
	DefaultLength      string    `json:"default_length,omitempty"`
}

type DocumentSettingsDTO struct {
	DefaultTemperature float64 `json:"default_temperature"`
	DefaultLength      string  `json:"default_length"`
}

type PlanStateDTO struct {
	CurrentPlan     string `json:"current_plan"`
	IsPlanning      bool   `json:"is_planning"`
	IsPlanFinalized bool   `json:"is_plan_finalized"`
}

type ShowDocumentResponse struct {
	Id        uuid.UUID           `json:"id"`
	Title     string              `json:"title"`
	Purpose   string              `json:"purpose"`
	Type      string              `json:"type,omitempty"`
	Settings  DocumentSettingsDTO `json:"settings"`
	Plan      PlanStateDTO        `json:"plan"`
	Sections  []SectionDTO        `json:"sections"`
	Resources []ResourceDTO       `json:"resources"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt *time.Time          `json:"updated_at"`
}
