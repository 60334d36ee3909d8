package create_professional

import (
	"github.com/avora-app/agenda-service/internal/domain"
	"github.com/avora-app/agenda-service/internal/service/roster/models"
	"github.com/avora-app/agenda-service/pkg/types"
)

// ProfessionalRequest HTTP request model
type ProfessionalRequest struct {
	Name      string          `json:"name"`
	Specialty string          `json:"specialty"`
	WorkDays  domain.WorkDays `json:"workDays"`
	StartTime string          `json:"startTime"` // "09:00"
	EndTime   string          `json:"endTime"`   // "17:00"
}

// ProfessionalResponse HTTP response model
type ProfessionalResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Specialty string          `json:"specialty"`
	WorkDays  domain.WorkDays `json:"workDays"`
	StartTime string          `json:"startTime"`
	EndTime   string          `json:"endTime"`
	Active    bool            `json:"active"`
}

// ToServiceInput конвертирует HTTP запрос в модель сервиса
func (r *ProfessionalRequest) ToServiceInput() (*models.ProfessionalInput, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &models.ProfessionalInput{
		Name:      r.Name,
		Specialty: r.Specialty,
		WorkDays:  r.WorkDays,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ProfessionalResponse) *ProfessionalResponse {
	return &ProfessionalResponse{
		ID:        resp.ID,
		Name:      resp.Name,
		Specialty: resp.Specialty,
		WorkDays:  resp.WorkDays,
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Active:    resp.Active,
	}
}
