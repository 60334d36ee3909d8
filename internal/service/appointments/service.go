package appointments

import (
	"context"
	"fmt"

	"github.com/avora-app/agenda-service/internal/calendar"
	"github.com/avora-app/agenda-service/internal/domain"
	"github.com/avora-app/agenda-service/internal/service/appointments/models"
)

// Service читающая сторона книги записей: выборки на день
// Мутации (создание и отмена) живут в соответствующих use case
type Service struct {
	appointmentsRepo AppointmentsRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentsRepo AppointmentsRepository, logger Logger) *Service {
	return &Service{
		appointmentsRepo: appointmentsRepo,
		logger:           logger,
	}
}

// ListForDay возвращает записи на дату, отсортированные по времени
func (s *Service) ListForDay(ctx context.Context, year, month0, day int) (*models.DayResponse, error) {
	if month0 < 0 || month0 > 11 || day < 1 || day > calendar.DaysInMonth(year, month0) {
		return nil, fmt.Errorf("%w: %d-%d-%d", ErrInvalidDate, year, month0+1, day)
	}

	book, err := s.appointmentsRepo.Load(ctx)
	if err != nil {
		s.logger.Error("ListForDay: failed to load appointment book: %v", err)
		return nil, fmt.Errorf("%w: ListForDay - repository error: %v", ErrInternal, err)
	}

	key := domain.NewDateKey(year, month0, day)
	bucket := book.ForDate(key)
	if bucket == nil {
		bucket = []domain.Appointment{}
	}

	return &models.DayResponse{
		DateKey:      key.String(),
		Appointments: bucket,
	}, nil
}
