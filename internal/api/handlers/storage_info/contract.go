package storage_info

import (
	"context"

	"github.com/avora-app/agenda-service/internal/service/backup/models"
)

type BackupService interface {
	Info(ctx context.Context) (*models.InfoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
