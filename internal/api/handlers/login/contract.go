package login

import (
	"context"

	"github.com/avora-app/agenda-service/internal/service/auth/models"
)

type AuthService interface {
	Login(ctx context.Context, creds *models.Credentials) (*models.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
