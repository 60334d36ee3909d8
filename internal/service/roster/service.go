package roster

import (
	"context"
	"fmt"
	"strings"

	"github.com/avora-app/agenda-service/internal/domain"
	"github.com/avora-app/agenda-service/internal/service/roster/models"
)

// Service сервис управления ростером профессионалов
// Ростер - единственный владелец коллекции профессионалов; записи ссылаются
// на профессионала по ID и хранят снапшот имени, поэтому удаление из ростера
// не каскадирует на существующие записи
type Service struct {
	rosterRepo   RosterRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса ростера
func NewService(rosterRepo RosterRepository, logger Logger) *Service {
	return &Service{
		rosterRepo:   rosterRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List возвращает весь ростер, включая неактивных профессионалов
func (s *Service) List(ctx context.Context) ([]models.ProfessionalResponse, error) {
	roster, err := s.rosterRepo.Load(ctx)
	if err != nil {
		s.logger.Error("List: failed to load roster: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoster(roster), nil
}

// Create добавляет нового профессионала в ростер
// Новый профессионал всегда активен; ID производен от времени создания
func (s *Service) Create(ctx context.Context, input *models.ProfessionalInput) (*models.ProfessionalResponse, error) {
	s.logger.Info("Create: name=%q, specialty=%q", input.Name, input.Specialty)

	if err := validateInput(input); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	roster, err := s.rosterRepo.Load(ctx)
	if err != nil {
		s.logger.Error("Create: failed to load roster: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	professional := domain.Professional{
		ID:        s.freshID(roster),
		Name:      strings.TrimSpace(input.Name),
		Specialty: strings.TrimSpace(input.Specialty),
		WorkDays:  input.WorkDays,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Active:    true,
	}

	updated := append(append([]domain.Professional(nil), roster...), professional)
	if err := s.rosterRepo.Save(ctx, updated); err != nil {
		s.logger.Error("Create: failed to save roster: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: professional id=%d added", professional.ID)
	return models.FromDomainProfessional(&professional), nil
}

// Update редактирует профессионала на месте
// Статус активности при редактировании не меняется
func (s *Service) Update(ctx context.Context, id int64, input *models.ProfessionalInput) (*models.ProfessionalResponse, error) {
	s.logger.Info("Update: id=%d", id)

	if err := validateInput(input); err != nil {
		s.logger.Warn("Update: validation failed for id=%d: %v", id, err)
		return nil, err
	}

	roster, err := s.rosterRepo.Load(ctx)
	if err != nil {
		s.logger.Error("Update: failed to load roster: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated := append([]domain.Professional(nil), roster...)
	professional := domain.FindProfessional(updated, id)
	if professional == nil {
		s.logger.Warn("Update: professional id=%d not found", id)
		return nil, ErrProfessionalNotFound
	}

	professional.Name = strings.TrimSpace(input.Name)
	professional.Specialty = strings.TrimSpace(input.Specialty)
	professional.WorkDays = input.WorkDays
	professional.StartTime = input.StartTime
	professional.EndTime = input.EndTime

	if err := s.rosterRepo.Save(ctx, updated); err != nil {
		s.logger.Error("Update: failed to save roster: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: professional id=%d updated", id)
	return models.FromDomainProfessional(professional), nil
}

// SetActive включает или выключает профессионала
// Неактивный профессионал исключается из доступности и бронирования,
// но остается в ростере
func (s *Service) SetActive(ctx context.Context, id int64, active bool) (*models.ProfessionalResponse, error) {
	s.logger.Info("SetActive: id=%d, active=%t", id, active)

	roster, err := s.rosterRepo.Load(ctx)
	if err != nil {
		s.logger.Error("SetActive: failed to load roster: %v", err)
		return nil, fmt.Errorf("%w: SetActive - repository error: %v", ErrInternal, err)
	}

	updated := append([]domain.Professional(nil), roster...)
	professional := domain.FindProfessional(updated, id)
	if professional == nil {
		s.logger.Warn("SetActive: professional id=%d not found", id)
		return nil, ErrProfessionalNotFound
	}

	professional.Active = active

	if err := s.rosterRepo.Save(ctx, updated); err != nil {
		s.logger.Error("SetActive: failed to save roster: %v", err)
		return nil, fmt.Errorf("%w: SetActive - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfessional(professional), nil
}

// Delete безвозвратно удаляет профессионала из ростера
// Существующие записи не трогаются: они ссылаются на ID и отображаются
// по сохраненному снапшоту имени
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: id=%d", id)

	roster, err := s.rosterRepo.Load(ctx)
	if err != nil {
		s.logger.Error("Delete: failed to load roster: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	filtered := make([]domain.Professional, 0, len(roster))
	found := false
	for _, p := range roster {
		if p.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, p)
	}

	if !found {
		s.logger.Warn("Delete: professional id=%d not found", id)
		return ErrProfessionalNotFound
	}

	if err := s.rosterRepo.Save(ctx, filtered); err != nil {
		s.logger.Error("Delete: failed to save roster: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: professional id=%d removed, appointments left intact", id)
	return nil
}

// validateInput проверяет входные данные профессионала
func validateInput(input *models.ProfessionalInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(input.Specialty) == "" {
		return ErrSpecialtyRequired
	}
	if !input.WorkDays.HasAny() {
		return ErrNoWorkDays
	}
	if !input.StartTime.IsValid() || !input.EndTime.IsValid() {
		return ErrInvalidHours
	}
	if !input.StartTime.IsBefore(input.EndTime) {
		return ErrInvalidHours
	}
	return nil
}

// freshID возвращает уникальный в пределах ростера ID, производный от
// текущего времени (UnixMilli)
func (s *Service) freshID(roster []domain.Professional) int64 {
	id := s.timeProvider.Now().UnixMilli()
	for domain.FindProfessional(roster, id) != nil {
		id++
	}
	return id
}
