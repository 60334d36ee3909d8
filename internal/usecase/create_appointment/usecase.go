package create_appointment

import (
	"context"
	"fmt"
	"strings"

	"github.com/avora-app/agenda-service/internal/domain"
)

// UseCase use case создания записи
// Выполняет полную цепочку предусловий и только потом меняет книгу:
// отклоненный запрос не мутирует состояние
type UseCase struct {
	rosterRepo       RosterRepository
	appointmentsRepo AppointmentsRepository
	catalog          []domain.Service
	timeProvider     TimeProvider
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
		catalog:          domain.DefaultServices,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	key := domain.NewDateKey(req.Year, req.Month0, req.Day)

	uc.logger.Info("CreateAppointment: date=%s, time=%s, professional=%d, service=%d",
		key, req.Time, req.ProfessionalID, req.ServiceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем ростер и находим профессионала
	roster, err := uc.rosterRepo.Load(ctx)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to load roster: %v", err)
		return nil, fmt.Errorf("%w: failed to load roster: %v", ErrInternal, err)
	}

	professional := domain.FindProfessional(roster, req.ProfessionalID)
	if professional == nil {
		uc.logger.Warn("CreateAppointment: professional id=%d not found", req.ProfessionalID)
		return nil, ErrProfessionalNotFound
	}

	// 3. Находим услугу в каталоге
	service := domain.FindService(uc.catalog, req.ServiceID)
	if service == nil {
		uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 4. Загружаем книгу записей
	book, err := uc.appointmentsRepo.Load(ctx)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to load appointment book: %v", err)
		return nil, fmt.Errorf("%w: failed to load appointment book: %v", ErrInternal, err)
	}

	// 5. Проверяем конфликт: точное совпадение пары (время, профессионал)
	// Другой профессионал в тот же слот - не конфликт
	if !book.IsSlotFree(key, req.Time, req.ProfessionalID) {
		uc.logger.Warn("CreateAppointment: slot %s %s taken for professional id=%d",
			key, req.Time, req.ProfessionalID)
		return nil, ErrSlotTaken
	}

	// 6. Создаем запись со снапшотами имени, названия услуги и цены
	// ID производен от времени создания; при совпадении миллисекунды
	// с существующей записью бакета ID сдвигается до уникального
	appt := domain.Appointment{
		ID:               uc.freshID(book, key),
		ClientName:       strings.TrimSpace(req.ClientName),
		Time:             req.Time,
		ProfessionalID:   professional.ID,
		ProfessionalName: professional.Name,
		ServiceID:        service.ID,
		ServiceName:      service.Name,
		Price:            service.Price,
	}

	// 7. Вставляем в бакет (с пересортировкой) и сохраняем
	updated := book.Insert(key, appt)

	if err := uc.appointmentsRepo.Save(ctx, updated); err != nil {
		// Состояние в памяти уже изменилось; отката нет - сбой персистентности
		// логируется, операция считается выполненной
		uc.logger.Error("CreateAppointment: failed to persist appointment book: %v", err)
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d on %s at %s", appt.ID, key, appt.Time)

	return &Response{
		ID:               appt.ID,
		DateKey:          key.String(),
		Time:             appt.Time,
		ProfessionalID:   appt.ProfessionalID,
		ServiceID:        appt.ServiceID,
		ProfessionalName: appt.ProfessionalName,
		ServiceName:      appt.ServiceName,
		Price:            appt.Price,
		ClientName:       appt.ClientName,
	}, nil
}

// freshID возвращает уникальный в пределах бакета ID, производный от
// текущего времени (UnixMilli)
func (uc *UseCase) freshID(book domain.AppointmentBook, key domain.DateKey) int64 {
	id := uc.timeProvider.Now().UnixMilli()
	for idTaken(book.ForDate(key), id) {
		id++
	}
	return id
}

func idTaken(bucket []domain.Appointment, id int64) bool {
	for _, appt := range bucket {
		if appt.ID == id {
			return true
		}
	}
	return false
}
