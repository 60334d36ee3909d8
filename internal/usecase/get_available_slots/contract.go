package get_available_slots

import (
	"context"

	"github.com/avora-app/agenda-service/internal/domain"
)

// RosterRepository интерфейс репозитория ростера профессионалов
type RosterRepository interface {
	Load(ctx context.Context) ([]domain.Professional, error)
}

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
