package import_backup

import (
	"context"

	"github.com/avora-app/agenda-service/internal/service/backup/models"
)

type BackupService interface {
	Import(ctx context.Context, payload []byte) (*models.ImportResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
