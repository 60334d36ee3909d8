package kv

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisStore key-value хранилище поверх Redis
// Все ключи сервиса живут под общим префиксом, чтобы не смешиваться
// с чужими данными в той же базе
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore создает хранилище и проверяет соединение
func NewRedisStore(ctx context.Context, client *redis.Client, prefix string) (*RedisStore, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: NewRedisStore - ping: %v", ErrIO, err)
	}
	return &RedisStore{client: client, prefix: prefix}, nil
}

func (s *RedisStore) fullKey(key string) string {
	return s.prefix + key
}

// Load возвращает значение по ключу
func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.fullKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - GET %s: %v", ErrIO, key, err)
	}
	return value, nil
}

// Save записывает значение по ключу без TTL
func (s *RedisStore) Save(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.fullKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("%w: Save - SET %s: %v", ErrIO, key, err)
	}
	return nil
}

// Remove удаляет ключ
func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.fullKey(key)).Err(); err != nil {
		return fmt.Errorf("%w: Remove - DEL %s: %v", ErrIO, key, err)
	}
	return nil
}

// Keys возвращает все ключи под префиксом сервиса (без префикса)
func (s *RedisStore) Keys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0)

	iter := s.client.Scan(ctx, 0, s.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), s.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("%w: Keys - SCAN: %v", ErrIO, err)
	}

	sort.Strings(keys)
	return keys, nil
}

// ClearAll удаляет все ключи под префиксом сервиса
func (s *RedisStore) ClearAll(ctx context.Context) error {
	keys, err := s.Keys(ctx)
	if err != nil {
		return err
	}

	for _, key := range keys {
		if err := s.Remove(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
