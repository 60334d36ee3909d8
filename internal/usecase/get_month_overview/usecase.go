package get_month_overview

import (
	"context"
	"fmt"

	"github.com/avora-app/agenda-service/internal/calendar"
	"github.com/avora-app/agenda-service/internal/domain"
)

// Request модель запроса обзора месяца
type Request struct {
	Year   int // Год
	Month0 int // Месяц, 0-базный (0 = январь)
}

// Cell ячейка сетки месяца с аннотацией
// Day == 0 - ячейка-заполнитель перед первым числом
type Cell struct {
	Day             int  // Номер дня (0 для заполнителя)
	Appointments    int  // Количество записей на день
	HasAppointments bool // Есть ли записи (по наличию ключа в книге)
}

// Response модель ответа: сетка месяца для раскладки 7 колонок
type Response struct {
	Year   int    // Год
	Month0 int    // Месяц, 0-базный
	Cells  []Cell // Заполнители + дни 1..N, слева направо, сверху вниз
}

// UseCase use case обзора месяца: сетка календаря, аннотированная
// количеством записей на каждый день
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

// Execute выполняет use case обзора месяца
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthOverview: year=%d, month0=%d", req.Year, req.Month0)

	// 1. Валидация месяца
	if req.Month0 < 0 || req.Month0 > 11 {
		return nil, fmt.Errorf("%w: month0=%d out of range", ErrInvalidMonth, req.Month0)
	}

	// 2. Загружаем книгу записей
	book, err := uc.appointmentsRepo.Load(ctx)
	if err != nil {
		uc.logger.Error("GetMonthOverview: failed to load appointment book: %v", err)
		return nil, fmt.Errorf("%w: failed to load appointment book: %v", ErrInternal, err)
	}

	// 3. Обходим сетку месяца и аннотируем дни
	cells := make([]Cell, 0, 37)
	for cell := range calendar.MonthGrid(req.Year, req.Month0) {
		if cell.IsEmpty() {
			cells = append(cells, Cell{})
			continue
		}

		key := domain.NewDateKey(req.Year, req.Month0, cell.Day)
		cells = append(cells, Cell{
			Day:             cell.Day,
			Appointments:    book.CountForDate(key),
			HasAppointments: book.HasAny(key),
		})
	}

	uc.logger.Info("GetMonthOverview: %d cells for %d-%d", len(cells), req.Year, req.Month0+1)

	return &Response{
		Year:   req.Year,
		Month0: req.Month0,
		Cells:  cells,
	}, nil
}
