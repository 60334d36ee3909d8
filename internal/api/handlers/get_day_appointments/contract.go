package get_day_appointments

import (
	"context"

	"github.com/avora-app/agenda-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	ListForDay(ctx context.Context, year, month0, day int) (*models.DayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
