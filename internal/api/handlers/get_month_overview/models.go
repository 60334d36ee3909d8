package get_month_overview

import (
	getMonthOverview "github.com/avora-app/agenda-service/internal/usecase/get_month_overview"
)

// CellResponse ячейка сетки месяца
// day == 0 - заполнитель перед первым числом месяца
type CellResponse struct {
	Day             int  `json:"day"`
	Appointments    int  `json:"appointments"`
	HasAppointments bool `json:"hasAppointments"`
}

// GetMonthOverviewResponse HTTP response model
// Месяц в ответе 1-базный, как в URL
type GetMonthOverviewResponse struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Cells []CellResponse `json:"cells"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMonthOverview.Response) *GetMonthOverviewResponse {
	cells := make([]CellResponse, len(resp.Cells))
	for i, cell := range resp.Cells {
		cells[i] = CellResponse{
			Day:             cell.Day,
			Appointments:    cell.Appointments,
			HasAppointments: cell.HasAppointments,
		}
	}

	return &GetMonthOverviewResponse{
		Year:  resp.Year,
		Month: resp.Month0 + 1,
		Cells: cells,
	}
}
