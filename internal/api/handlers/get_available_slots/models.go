package get_available_slots

import (
	getAvailableSlots "github.com/avora-app/agenda-service/internal/usecase/get_available_slots"
)

// SlotResponse статус одного слота
type SlotResponse struct {
	Time  string `json:"time"`
	Taken bool   `json:"taken"`
}

// GetAvailableSlotsResponse HTTP response model
type GetAvailableSlotsResponse struct {
	DateKey          string         `json:"dateKey"`
	ProfessionalID   int64          `json:"professionalId"`
	ProfessionalName string         `json:"professionalName"`
	StartTime        string         `json:"startTime"`
	EndTime          string         `json:"endTime"`
	Slots            []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *GetAvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			Time:  slot.Time.String(),
			Taken: slot.Taken,
		}
	}

	return &GetAvailableSlotsResponse{
		DateKey:          resp.DateKey,
		ProfessionalID:   resp.ProfessionalID,
		ProfessionalName: resp.ProfessionalName,
		StartTime:        resp.StartTime.String(),
		EndTime:          resp.EndTime.String(),
		Slots:            slots,
	}
}
