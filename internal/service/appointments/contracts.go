package appointments

import (
	"context"

	"github.com/avora-app/agenda-service/internal/domain"
)

// AppointmentsRepository интерфейс репозитория книги записей
type AppointmentsRepository interface {
	Load(ctx context.Context) (domain.AppointmentBook, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
