package roster

import (
	"context"
	"time"

	"github.com/avora-app/agenda-service/internal/domain"
)

// RosterRepository интерфейс репозитория ростера профессионалов
type RosterRepository interface {
	Load(ctx context.Context) ([]domain.Professional, error)
	Save(ctx context.Context, roster []domain.Professional) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
// Текущее время - источник ID нового профессионала
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
