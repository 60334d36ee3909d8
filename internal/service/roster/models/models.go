package models

import (
	"github.com/avora-app/agenda-service/internal/domain"
	"github.com/avora-app/agenda-service/pkg/types"
)

// ProfessionalInput входные данные создания или редактирования профессионала
type ProfessionalInput struct {
	Name      string           // Имя (обязательно)
	Specialty string           // Специальность (обязательно)
	WorkDays  domain.WorkDays  // Недельное расписание (минимум один день)
	StartTime types.TimeString // Начало рабочего окна
	EndTime   types.TimeString // Конец рабочего окна (строго позже начала)
}

// ProfessionalResponse модель профессионала в ответе сервиса
type ProfessionalResponse struct {
	ID        int64
	Name      string
	Specialty string
	WorkDays  domain.WorkDays
	StartTime types.TimeString
	EndTime   types.TimeString
	Active    bool
}

// FromDomainProfessional конвертирует доменную модель в ответ сервиса
func FromDomainProfessional(p *domain.Professional) *ProfessionalResponse {
	return &ProfessionalResponse{
		ID:        p.ID,
		Name:      p.Name,
		Specialty: p.Specialty,
		WorkDays:  p.WorkDays,
		StartTime: p.StartTime,
		EndTime:   p.EndTime,
		Active:    p.Active,
	}
}

// FromDomainRoster конвертирует список профессионалов в ответ сервиса
func FromDomainRoster(roster []domain.Professional) []ProfessionalResponse {
	result := make([]ProfessionalResponse, len(roster))
	for i := range roster {
		result[i] = *FromDomainProfessional(&roster[i])
	}
	return result
}
