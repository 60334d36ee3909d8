package create_appointment

import (
	"github.com/avora-app/agenda-service/pkg/types"

	createAppointment "github.com/avora-app/agenda-service/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
// Месяц 1-базный, как во всём внешнем API; внутрь передается 0-базным
type CreateAppointmentRequest struct {
	Year           int    `json:"year"`
	Month          int    `json:"month"` // 1..12
	Day            int    `json:"day"`
	Time           string `json:"time"` // "09:00"
	ProfessionalID int64  `json:"professionalId"`
	ServiceID      int64  `json:"serviceId"`
	ClientName     string `json:"clientName"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID               int64   `json:"id"`
	DateKey          string  `json:"dateKey"`
	Time             string  `json:"time"`
	ProfessionalID   int64   `json:"professionalId"`
	ProfessionalName string  `json:"professionalName"`
	ServiceID        int64   `json:"serviceId"`
	ServiceName      string  `json:"serviceName"`
	Price            float64 `json:"price"`
	ClientName       string  `json:"clientName"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		Year:           r.Year,
		Month0:         r.Month - 1,
		Day:            r.Day,
		Time:           slot,
		ProfessionalID: r.ProfessionalID,
		ServiceID:      r.ServiceID,
		ClientName:     r.ClientName,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:               resp.ID,
		DateKey:          resp.DateKey,
		Time:             resp.Time.String(),
		ProfessionalID:   resp.ProfessionalID,
		ProfessionalName: resp.ProfessionalName,
		ServiceID:        resp.ServiceID,
		ServiceName:      resp.ServiceName,
		Price:            resp.Price,
		ClientName:       resp.ClientName,
	}
}
