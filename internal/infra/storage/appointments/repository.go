package appointments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avora-app/agenda-service/internal/domain"
	"github.com/avora-app/agenda-service/internal/infra/storage/kv"
)

// Repository репозиторий книги записей поверх key-value хранилища
// Вся книга сериализуется одним JSON объектом {dateKey: [appointments]}
// под ключом avoraAppointments
type Repository struct {
	store  KVStore
	logger Logger
}

// NewRepository создает репозиторий книги записей
func NewRepository(store KVStore, logger Logger) *Repository {
	return &Repository{store: store, logger: logger}
}

// Load загружает книгу записей из хранилища
// Отсутствующий ключ означает пустую книгу; поврежденный JSON логируется
// и тоже дает пустую книгу - загрузка никогда не валит движок
func (r *Repository) Load(ctx context.Context) (domain.AppointmentBook, error) {
	data, err := r.store.Load(ctx, domain.KeyAppointments)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return domain.AppointmentBook{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - read key: %v", ErrLoad, err)
	}

	var book domain.AppointmentBook
	if err := json.Unmarshal(data, &book); err != nil {
		r.logger.Warn("appointments: malformed JSON under %s, falling back to empty book: %v",
			domain.KeyAppointments, err)
		return domain.AppointmentBook{}, nil
	}
	if book == nil {
		book = domain.AppointmentBook{}
	}

	return book, nil
}

// Save сохраняет книгу записей в хранилище
func (r *Repository) Save(ctx context.Context, book domain.AppointmentBook) error {
	data, err := json.Marshal(book)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal book: %v", ErrSave, err)
	}

	if err := r.store.Save(ctx, domain.KeyAppointments, data); err != nil {
		return fmt.Errorf("%w: Save - write key: %v", ErrSave, err)
	}

	return nil
}
