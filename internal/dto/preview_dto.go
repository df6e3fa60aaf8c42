package dto

type PreviewSectionInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CreatePreviewRequest struct {
	Title    string                `json:"title" validate:"required"`
	Sections []PreviewSectionInput `json:"sections" validate:"required,min=1"`
}

type CreatePreviewResponse struct {
	PreviewId string `json:"preview_id"`
	URL       string `json:"url"`
}

type PreviewSectionDTO struct {
	Title string `json:"title"`
	HTML  string `json:"html"`
}

type ShowPreviewResponse struct {
	Title    string              `json:"title"`
	Sections []PreviewSectionDTO `json:"sections"`
}
