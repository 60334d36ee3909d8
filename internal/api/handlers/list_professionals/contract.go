package list_professionals

import (
	"context"

	"github.com/avora-app/agenda-service/internal/service/roster/models"
)

type RosterService interface {
	List(ctx context.Context) ([]models.ProfessionalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
