package list_professionals

import (
	"github.com/avora-app/agenda-service/internal/domain"
	"github.com/avora-app/agenda-service/internal/service/roster/models"
)

// ProfessionalResponse HTTP модель профессионала
type ProfessionalResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Specialty string          `json:"specialty"`
	WorkDays  domain.WorkDays `json:"workDays"`
	StartTime string          `json:"startTime"`
	EndTime   string          `json:"endTime"`
	Active    bool            `json:"active"`
}

// FromServiceResponse конвертирует список сервиса в HTTP response
func FromServiceResponse(roster []models.ProfessionalResponse) []ProfessionalResponse {
	result := make([]ProfessionalResponse, len(roster))
	for i, p := range roster {
		result[i] = ProfessionalResponse{
			ID:        p.ID,
			Name:      p.Name,
			Specialty: p.Specialty,
			WorkDays:  p.WorkDays,
			StartTime: p.StartTime.String(),
			EndTime:   p.EndTime.String(),
			Active:    p.Active,
		}
	}
	return result
}
