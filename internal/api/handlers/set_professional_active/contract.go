package set_professional_active

import (
	"context"

	"github.com/avora-app/agenda-service/internal/service/roster/models"
)

type RosterService interface {
	SetActive(ctx context.Context, id int64, active bool) (*models.ProfessionalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
