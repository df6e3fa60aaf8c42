package dto

import (
	"time"

	"github.com/google/uuid"
)

type ResourceDTO struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type AddURLResourceRequest struct {
	DocId uuid.UUID `json:"-"`
	URL   string    `json:"url" validate:"required,url"`
}

type DeleteResourceRequest struct {
	DocId      uuid.UUID `json:"-"`
	ResourceId int       `json:"-"`
}
