package cancel_appointment

import (
	"context"
	"fmt"

	"github.com/avora-app/agenda-service/internal/domain"
)

// Request модель запроса на отмену записи
type Request struct {
	DateKey       string // Ключ даты в legacy формате "{year}-{month1}-{day}"
	AppointmentID int64  // ID отменяемой записи
}

// Response модель ответа об отмене
type Response struct {
	DateKey   string // Ключ даты
	Removed   int64  // ID удаленной записи
	Remaining int    // Сколько записей осталось в бакете (0 = бакет удален)
}

// UseCase use case отмены записи
// Жизненный цикл записи: nonexistent -> booked -> nonexistent
// Редактирование моделируется шеллом как отмена + новое создание
type UseCase struct {
	appointmentsRepo AppointmentsRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentsRepo AppointmentsRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentsRepo: appointmentsRepo,
		logger:           logger,
	}
}

// Execute выполняет use case отмены записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelAppointment: dateKey=%s, id=%d", req.DateKey, req.AppointmentID)

	// 1. Разбираем ключ даты
	key, err := domain.ParseDateKey(req.DateKey)
	if err != nil {
		uc.logger.Warn("CancelAppointment: invalid date key %q: %v", req.DateKey, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateKey, err)
	}

	// 2. Загружаем книгу записей
	book, err := uc.appointmentsRepo.Load(ctx)
	if err != nil {
		uc.logger.Error("CancelAppointment: failed to load appointment book: %v", err)
		return nil, fmt.Errorf("%w: failed to load appointment book: %v", ErrInternal, err)
	}

	// 3. Удаляем запись; опустевший бакет удаляется из книги целиком
	updated, found := book.Remove(key, req.AppointmentID)
	if !found {
		uc.logger.Warn("CancelAppointment: appointment id=%d not found on %s", req.AppointmentID, key)
		return nil, ErrAppointmentNotFound
	}

	// 4. Сохраняем книгу
	if err := uc.appointmentsRepo.Save(ctx, updated); err != nil {
		// Состояние в памяти уже изменилось; отката нет
		uc.logger.Error("CancelAppointment: failed to persist appointment book: %v", err)
	}

	remaining := updated.CountForDate(key)
	uc.logger.Info("CancelAppointment: removed appointment id=%d on %s, %d remaining",
		req.AppointmentID, key, remaining)

	return &Response{
		DateKey:   key.String(),
		Removed:   req.AppointmentID,
		Remaining: remaining,
	}, nil
}
