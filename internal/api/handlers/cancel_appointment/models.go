package cancel_appointment

import (
	cancelAppointment "github.com/avora-app/agenda-service/internal/usecase/cancel_appointment"
)

// CancelAppointmentResponse HTTP response model
type CancelAppointmentResponse struct {
	DateKey   string `json:"dateKey"`
	Removed   int64  `json:"removed"`
	Remaining int    `json:"remaining"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelAppointment.Response) *CancelAppointmentResponse {
	return &CancelAppointmentResponse{
		DateKey:   resp.DateKey,
		Removed:   resp.Removed,
		Remaining: resp.Remaining,
	}
}
