package get_eligible_professionals

import (
	getEligibleProfessionals "github.com/avora-app/agenda-service/internal/usecase/get_eligible_professionals"
)

// ProfessionalResponse профессионал, доступный на дату
type ProfessionalResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// GetEligibleProfessionalsResponse HTTP response model
// Пустой список профессионалов - нормальный ответ со статусом 200
type GetEligibleProfessionalsResponse struct {
	DateKey       string                 `json:"dateKey"`
	Professionals []ProfessionalResponse `json:"professionals"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getEligibleProfessionals.Response) *GetEligibleProfessionalsResponse {
	professionals := make([]ProfessionalResponse, len(resp.Professionals))
	for i, p := range resp.Professionals {
		professionals[i] = ProfessionalResponse{
			ID:        p.ID,
			Name:      p.Name,
			Specialty: p.Specialty,
			StartTime: p.StartTime.String(),
			EndTime:   p.EndTime.String(),
		}
	}

	return &GetEligibleProfessionalsResponse{
		DateKey:       resp.DateKey,
		Professionals: professionals,
	}
}
