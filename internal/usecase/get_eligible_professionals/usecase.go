package get_eligible_professionals

import (
	"context"
	"fmt"

	"github.com/avora-app/agenda-service/internal/calendar"
	"github.com/avora-app/agenda-service/internal/domain"
	"github.com/avora-app/agenda-service/pkg/types"
)

// Request модель запроса профессионалов на дату
type Request struct {
	Year   int // Год
	Month0 int // Месяц, 0-базный
	Day    int // День месяца
}

// Professional модель профессионала в ответе
type Professional struct {
	ID        int64            // ID профессионала
	Name      string           // Имя
	Specialty string           // Специальность
	StartTime types.TimeString // Начало рабочего окна
	EndTime   types.TimeString // Конец рабочего окна
}

// Response модель ответа со списком подходящих профессионалов
// Пустой список - нормальный ответ: шелл показывает заглушку, не ошибку
type Response struct {
	DateKey       string         // Ключ даты
	Professionals []Professional // Активные профессионалы с рабочим днём недели
}

// UseCase use case получения профессионалов, которые могут работать в дату:
// активных и с отмеченным днём недели, в исходном порядке ростера
type UseCase struct {
	rosterRepo RosterRepository
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(rosterRepo RosterRepository, logger Logger) *UseCase {
	return &UseCase{
		rosterRepo: rosterRepo,
		logger:     logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	key := domain.NewDateKey(req.Year, req.Month0, req.Day)

	uc.logger.Info("GetEligibleProfessionals: date=%s", key)

	// 1. Валидация даты
	if req.Month0 < 0 || req.Month0 > 11 {
		return nil, fmt.Errorf("%w: month0=%d out of range", ErrInvalidDate, req.Month0)
	}
	if req.Day < 1 || req.Day > calendar.DaysInMonth(req.Year, req.Month0) {
		return nil, fmt.Errorf("%w: day=%d out of range for %d-%d", ErrInvalidDate, req.Day, req.Year, req.Month0+1)
	}

	// 2. Загружаем ростер
	roster, err := uc.rosterRepo.Load(ctx)
	if err != nil {
		uc.logger.Error("GetEligibleProfessionals: failed to load roster: %v", err)
		return nil, fmt.Errorf("%w: failed to load roster: %v", ErrInternal, err)
	}

	// 3. Фильтруем: активен и работает в этот день недели
	eligible := domain.EligibleProfessionals(roster, req.Year, req.Month0, req.Day)

	result := make([]Professional, len(eligible))
	for i, p := range eligible {
		result[i] = Professional{
			ID:        p.ID,
			Name:      p.Name,
			Specialty: p.Specialty,
			StartTime: p.StartTime,
			EndTime:   p.EndTime,
		}
	}

	uc.logger.Info("GetEligibleProfessionals: %d of %d professionals eligible on %s",
		len(result), len(roster), key)

	return &Response{
		DateKey:       key.String(),
		Professionals: result,
	}, nil
}
