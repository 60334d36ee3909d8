package register

import (
	"context"

	"github.com/avora-app/agenda-service/internal/service/auth/models"
)

type AuthService interface {
	Register(ctx context.Context, input *models.RegisterInput) (*models.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
