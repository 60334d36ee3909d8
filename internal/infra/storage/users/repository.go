package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/avora-app/agenda-service/internal/domain"
	"github.com/avora-app/agenda-service/internal/infra/storage/kv"
)

// Repository репозиторий учетных записей поверх key-value хранилища
// Пользователи сериализуются одним JSON массивом под ключом avoraUsers
type Repository struct {
	store  KVStore
	logger Logger
}

// NewRepository создает репозиторий пользователей
func NewRepository(store KVStore, logger Logger) *Repository {
	return &Repository{store: store, logger: logger}
}

// seedUsers генерирует стартовые учетные записи с bcrypt хэшами
// Пароли совпадают с legacy данными; смена пароля администратора
// после первого входа - на совести владельца салона
func seedUsers() ([]domain.User, error) {
	seeds := []struct {
		email    string
		name     string
		role     domain.UserRole
		password string
	}{
		{"admin@avora.com", "Administrador", domain.RoleAdmin, "admin123"},
		{"user@avora.com", "Usuário Padrão", domain.RoleUser, "user123"},
	}

	users := make([]domain.User, 0, len(seeds))
	for _, seed := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("%w: hash password for %s: %v", ErrSeed, seed.email, err)
		}
		users = append(users, domain.User{
			Email:        seed.email,
			Name:         seed.name,
			Role:         seed.role,
			PasswordHash: string(hash),
		})
	}

	return users, nil
}

// Load загружает пользователей из хранилища
// Отсутствующий ключ - первый запуск: записываются и возвращаются стартовые
// учетные записи. Поврежденный JSON логируется и тоже дает стартовые записи
func (r *Repository) Load(ctx context.Context) ([]domain.User, error) {
	data, err := r.store.Load(ctx, domain.KeyUsers)
	if errors.Is(err, kv.ErrKeyNotFound) {
		r.logger.Info("users: key %s missing, seeding default accounts", domain.KeyUsers)
		seeded, err := seedUsers()
		if err != nil {
			return nil, err
		}
		if err := r.Save(ctx, seeded); err != nil {
			r.logger.Error("users: failed to persist seeded accounts: %v", err)
		}
		return seeded, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - read key: %v", ErrLoad, err)
	}

	var list []domain.User
	if err := json.Unmarshal(data, &list); err != nil {
		r.logger.Warn("users: malformed JSON under %s, falling back to default accounts: %v",
			domain.KeyUsers, err)
		return seedUsers()
	}

	return list, nil
}

// Save сохраняет пользователей в хранилище
func (r *Repository) Save(ctx context.Context, list []domain.User) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal users: %v", ErrSave, err)
	}

	if err := r.store.Save(ctx, domain.KeyUsers, data); err != nil {
		return fmt.Errorf("%w: Save - write key: %v", ErrSave, err)
	}

	return nil
}
