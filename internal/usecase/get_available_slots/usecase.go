package get_available_slots

import (
	"context"
	"fmt"

	"github.com/avora-app/agenda-service/internal/calendar"
	"github.com/avora-app/agenda-service/internal/domain"
)

// UseCase use case получения статусов слотов для профессионала на дату
// Доступность всегда вычисляется заново по текущему состоянию ростера
// и книги записей - производных индексов и кешей нет
type UseCase struct {
	rosterRepo       RosterRepository
	appointmentsRepo AppointmentsRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	rosterRepo RosterRepository,
	appointmentsRepo AppointmentsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		rosterRepo:       rosterRepo,
		appointmentsRepo: appointmentsRepo,
		logger:           logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	key := domain.NewDateKey(req.Year, req.Month0, req.Day)

	uc.logger.Info("GetAvailableSlots: date=%s, professional=%d", key, req.ProfessionalID)

	// 1. Валидация даты
	if err := validateDate(req.Year, req.Month0, req.Day); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем ростер и находим профессионала
	roster, err := uc.rosterRepo.Load(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load roster: %v", err)
		return nil, fmt.Errorf("%w: failed to load roster: %v", ErrInternal, err)
	}

	professional := domain.FindProfessional(roster, req.ProfessionalID)
	if professional == nil {
		uc.logger.Warn("GetAvailableSlots: professional id=%d not found", req.ProfessionalID)
		return nil, ErrProfessionalNotFound
	}

	// 3. Загружаем книгу записей
	book, err := uc.appointmentsRepo.Load(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load appointment book: %v", err)
		return nil, fmt.Errorf("%w: failed to load appointment book: %v", ErrInternal, err)
	}

	// 4. Отмечаем занятость каждого канонического слота
	// Слот занят только при точном совпадении пары (время, профессионал);
	// дата без записей дает полностью свободный список
	slots := make([]Slot, len(domain.CanonicalSlots))
	for i, slot := range domain.CanonicalSlots {
		slots[i] = Slot{
			Time:  slot,
			Taken: !book.IsSlotFree(key, slot, req.ProfessionalID),
		}
	}

	uc.logger.Info("GetAvailableSlots: %d slots evaluated for professional id=%d on %s",
		len(slots), req.ProfessionalID, key)

	return &Response{
		DateKey:          key.String(),
		ProfessionalID:   professional.ID,
		ProfessionalName: professional.Name,
		StartTime:        professional.StartTime,
		EndTime:          professional.EndTime,
		Slots:            slots,
	}, nil
}

// validateDate проверяет, что компоненты образуют существующую календарную дату
func validateDate(year, month0, day int) error {
	if month0 < 0 || month0 > 11 {
		return fmt.Errorf("%w: month0=%d out of range", ErrInvalidDate, month0)
	}
	if day < 1 || day > calendar.DaysInMonth(year, month0) {
		return fmt.Errorf("%w: day=%d out of range for %d-%d", ErrInvalidDate, day, year, month0+1)
	}
	return nil
}
