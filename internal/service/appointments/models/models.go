package models

import "github.com/avora-app/agenda-service/internal/domain"

// DayResponse записи на одну календарную дату
// Список отсортирован по времени по возрастанию; пустой день дает
// пустой (не nil) список
type DayResponse struct {
	DateKey      string
	Appointments []domain.Appointment
}
