package kv

import "context"

// Store key-value хранилище сервиса
// Значения - сериализованный JSON под стабильными строковыми ключами
// Ядро никогда не обращается к хранилищу напрямую: репозитории загружают
// снапшоты, движок работает с чистыми данными, шелл сохраняет после мутаций
type Store interface {
	// Load возвращает значение по ключу
	// Возвращает ErrKeyNotFound, если ключ отсутствует
	Load(ctx context.Context, key string) ([]byte, error)

	// Save записывает значение по ключу, перезаписывая существующее
	Save(ctx context.Context, key string, value []byte) error

	// Remove удаляет ключ; отсутствие ключа не является ошибкой
	Remove(ctx context.Context, key string) error

	// Keys возвращает все присутствующие ключи
	Keys(ctx context.Context) ([]string, error)

	// ClearAll удаляет все ключи
	ClearAll(ctx context.Context) error
}
