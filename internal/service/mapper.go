package service

import (
	"ai-docauthor-be/internal/dto"
	"ai-docauthor-be/internal/entity"
)

func mapSection(s *entity.Section) dto.SectionDTO {
	return dto.SectionDTO{
		Id:              s.Id.String(),
		Title:           s.Title,
		Description:     s.Description,
		KeyPoints:       s.KeyPoints,
		Content:         s.Content,
		Strength:        s.Strength,
		IsGenerating:    s.IsGenerating,
		SourceOption:    s.SourceOption,
		SelectedSources: s.SelectedSources,
		Temperature:     s.Temperature,
		Length:          s.EstimatedLength,
		CurrentRevision: s.CurrentRevision,
		RevisionCount:   len(s.Revisions),
	}
}

func mapSections(sections []*entity.Section) []dto.SectionDTO {
	result := make([]dto.SectionDTO, 0, len(sections))
	for _, s := range sections {
		result = append(result, mapSection(s))
	}
	return result
}

func mapResources(resources []*entity.Resource) []dto.ResourceDTO {
	result := make([]dto.ResourceDTO, 0, len(resources))
	for _, r := range resources {
		result = append(result, dto.ResourceDTO{
			Id:        r.Id,
			Name:      r.Name,
			Status:    r.Status,
			CreatedAt: r.CreatedAt,
		})
	}
	return result
}
