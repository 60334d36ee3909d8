package get_day_appointments

import (
	"github.com/avora-app/agenda-service/internal/service/appointments/models"
)

// AppointmentResponse запись в ответе на день
type AppointmentResponse struct {
	ID               int64   `json:"id"`
	ClientName       string  `json:"clientName"`
	Time             string  `json:"time"`
	ProfessionalID   int64   `json:"professionalId"`
	ProfessionalName string  `json:"professionalName"`
	ServiceID        int64   `json:"serviceId"`
	ServiceName      string  `json:"serviceName"`
	Price            float64 `json:"price"`
}

// GetDayAppointmentsResponse HTTP response model
type GetDayAppointmentsResponse struct {
	DateKey      string                `json:"dateKey"`
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.DayResponse) *GetDayAppointmentsResponse {
	appointments := make([]AppointmentResponse, len(resp.Appointments))
	for i, appt := range resp.Appointments {
		appointments[i] = AppointmentResponse{
			ID:               appt.ID,
			ClientName:       appt.ClientName,
			Time:             appt.Time.String(),
			ProfessionalID:   appt.ProfessionalID,
			ProfessionalName: appt.ProfessionalName,
			ServiceID:        appt.ServiceID,
			ServiceName:      appt.ServiceName,
			Price:            appt.Price,
		}
	}

	return &GetDayAppointmentsResponse{
		DateKey:      resp.DateKey,
		Appointments: appointments,
	}
}
