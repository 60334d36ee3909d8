package backup

import (
	"context"
	"time"
)

// KVStore интерфейс key-value хранилища для резервного копирования
// Бэкап работает на уровне сырых ключей: ему не нужны доменные модели
type KVStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Keys(ctx context.Context) ([]string, error)
	ClearAll(ctx context.Context) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
// Текущая дата попадает в имя файла бэкапа
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
