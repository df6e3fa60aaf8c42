package dto

import "github.com/google/uuid"

type SectionDTO struct {
	Id              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	KeyPoints       []string `json:"key_points,omitempty"`
	Content         string   `json:"content"`
	Strength        int      `json:"strength"`
	IsGenerating    bool     `json:"is_generating"`
	SourceOption    string   `json:"source_option"`
	SelectedSources []string `json:"selected_sources,omitempty"`
	Temperature     *float64 `json:"temperature,omitempty"`
	Length          string   `json:"length,omitempty"`
	CurrentRevision int      `json:"current_revision"`
	RevisionCount   int      `json:"revision_count"`
}

type UpdateSectionRequest struct {
	DocId           uuid.UUID `json:"-"`
	SectionId       string    `json:"-"`
	Title           *string   `json:"title,omitempty"`
	Description     *string   `json:"description,omitempty"`
	Content         *string   `json:"content,omitempty"`
	SourceOption    *string   `json:"source_option,omitempty" validate:"omitempty,oneof=all selected model"`
	SelectedSources []string  `json:"selected_sources,omitempty"`
	Temperature     *float64  `json:"temperature,omitempty" validate:"omitempty,gte=0,lte=1"`
	Length          *string   `json:"length,omitempty"`
}

type AddSectionRequest struct {
	DocId       uuid.UUID `json:"-"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	KeyPoints   []string  `json:"key_points,omitempty"`
	Length      string    `json:"length,omitempty"`
}

type DeleteSectionRequest struct {
	DocId     uuid.UUID `json:"-"`
	SectionId string    `json:"-"`
}

type ImproveSectionRequest struct {
	DocId        uuid.UUID `json:"-"`
	SectionId    string    `json:"-"`
	Improvements []string  `json:"improvements" validate:"required,min=1,dive,required"`
}

type GenerateSectionRequest struct {
	DocId     uuid.UUID `json:"-"`
	SectionId string    `json:"-"`
}

type GenerateAllRequest struct {
	DocId uuid.UUID `json:"-"`
}

type GenerateAllResponse struct {
	DocId   uuid.UUID `json:"doc_id"`
	Started bool      `json:"started"`
}

type SelectRevisionRequest struct {
	DocId     uuid.UUID `json:"-"`
	SectionId string    `json:"-"`
	Revision  int       `json:"revision" validate:"gte=0"`
}
