package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avora-app/agenda-service/internal/domain"
	"github.com/avora-app/agenda-service/internal/infra/storage/kv"
)

// Repository репозиторий ростера профессионалов поверх key-value хранилища
// Весь ростер сериализуется одним JSON массивом под ключом avoraProfessionals
type Repository struct {
	store  KVStore
	logger Logger
}

// NewRepository создает репозиторий ростера
func NewRepository(store KVStore, logger Logger) *Repository {
	return &Repository{store: store, logger: logger}
}

// Load загружает ростер из хранилища
// Отсутствующий ключ - первый запуск: записывается и возвращается стартовый
// ростер. Поврежденный JSON логируется, возвращается стартовый ростер -
// загрузка никогда не валит движок
func (r *Repository) Load(ctx context.Context) ([]domain.Professional, error) {
	data, err := r.store.Load(ctx, domain.KeyProfessionals)
	if errors.Is(err, kv.ErrKeyNotFound) {
		r.logger.Info("roster: key %s missing, seeding default roster", domain.KeyProfessionals)
		seeded := append([]domain.Professional(nil), domain.DefaultProfessionals...)
		if err := r.Save(ctx, seeded); err != nil {
			r.logger.Error("roster: failed to persist seeded roster: %v", err)
		}
		return seeded, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - read key: %v", ErrLoad, err)
	}

	var roster []domain.Professional
	if err := json.Unmarshal(data, &roster); err != nil {
		r.logger.Warn("roster: malformed JSON under %s, falling back to default roster: %v",
			domain.KeyProfessionals, err)
		return append([]domain.Professional(nil), domain.DefaultProfessionals...), nil
	}

	return roster, nil
}

// Save сохраняет ростер в хранилище
func (r *Repository) Save(ctx context.Context, roster []domain.Professional) error {
	data, err := json.Marshal(roster)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal roster: %v", ErrSave, err)
	}

	if err := r.store.Save(ctx, domain.KeyProfessionals, data); err != nil {
		return fmt.Errorf("%w: Save - write key: %v", ErrSave, err)
	}

	return nil
}
