package auth

import (
	"context"
	"time"

	"github.com/avora-app/agenda-service/internal/domain"
)

// UsersRepository интерфейс репозитория учетных записей
type UsersRepository interface {
	Load(ctx context.Context) ([]domain.User, error)
	Save(ctx context.Context, users []domain.User) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
// Время определяет срок действия выпускаемых токенов
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
