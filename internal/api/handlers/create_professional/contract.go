package create_professional

import (
	"context"

	"github.com/avora-app/agenda-service/internal/service/roster/models"
)

type RosterService interface {
	Create(ctx context.Context, input *models.ProfessionalInput) (*models.ProfessionalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
