package v1

import "github.com/shenikar/incident_board/internal/models"

// DTOToSubmissionForm преобразует DTO формы в сырые поля для пайплайна отправки
func DTOToSubmissionForm(dto SubmitIncidentRequest) models.SubmissionForm {
	return models.SubmissionForm{
		Title:       dto.Title,
		Location:    dto.Location,
		Lat:         string(dto.Lat),
		Lng:         string(dto.Lng),
		Severity:    dto.Severity,
		Description: dto.Description,
		Image:       dto.Image,
		Time:        dto.Time,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Location:    model.Location,
		Lat:         model.Lat,
		Lng:         model.Lng,
		Severity:    model.Severity,
		Image:       model.Image,
		Time:        model.Time,
		Verified:    model.Verified,
		Flagged:     model.Flagged,
		Submitted:   model.Submitted,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}
