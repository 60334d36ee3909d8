package roster

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avora-app/agenda-service/internal/domain"
	"github.com/avora-app/agenda-service/internal/service/roster/models"
)

type fakeRosterRepo struct {
	roster    []domain.Professional
	saveCalls int
}

func (f *fakeRosterRepo) Load(_ context.Context) ([]domain.Professional, error) {
	return f.roster, nil
}

func (f *fakeRosterRepo) Save(_ context.Context, roster []domain.Professional) error {
	f.saveCalls++
	f.roster = roster
	return nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeRosterRepo) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: time.UnixMilli(1700000000000)}
	return svc
}

func validInput() *models.ProfessionalInput {
	return &models.ProfessionalInput{
		Name:      "Carla Mendes",
		Specialty: "Manicure",
		WorkDays:  domain.WorkDays{Monday: true, Wednesday: true},
		StartTime: "09:00",
		EndTime:   "18:00",
	}
}

func TestList_IncludesInactive(t *testing.T) {
	roster := append([]domain.Professional(nil), domain.DefaultProfessionals...)
	roster[1].Active = false

	svc := newTestService(&fakeRosterRepo{roster: roster})

	result, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.True(t, result[0].Active)
	assert.False(t, result[1].Active)
}

func TestCreate(t *testing.T) {
	repo := &fakeRosterRepo{roster: domain.DefaultProfessionals}
	svc := newTestService(repo)

	input := validInput()
	input.Name = "  Carla Mendes  "

	created, err := svc.Create(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, int64(1700000000000), created.ID)
	assert.Equal(t, "Carla Mendes", created.Name)
	assert.True(t, created.Active)

	require.Len(t, repo.roster, 3)
	assert.Equal(t, created.ID, repo.roster[2].ID)
}

func TestCreate_IDCollisionBumps(t *testing.T) {
	roster := append([]domain.Professional(nil), domain.DefaultProfessionals...)
	roster[0].ID = 1700000000000
	roster[1].ID = 1700000000001

	svc := newTestService(&fakeRosterRepo{roster: roster})

	created, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000002), created.ID)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.ProfessionalInput)
		wantErr error
	}{
		{"blank name", func(i *models.ProfessionalInput) { i.Name = "   " }, ErrNameRequired},
		{"blank specialty", func(i *models.ProfessionalInput) { i.Specialty = "" }, ErrSpecialtyRequired},
		{"no work days", func(i *models.ProfessionalInput) { i.WorkDays = domain.WorkDays{} }, ErrNoWorkDays},
		{"malformed start", func(i *models.ProfessionalInput) { i.StartTime = "9am" }, ErrInvalidHours},
		{"end before start", func(i *models.ProfessionalInput) { i.StartTime = "18:00"; i.EndTime = "09:00" }, ErrInvalidHours},
		{"zero-length window", func(i *models.ProfessionalInput) { i.StartTime = "09:00"; i.EndTime = "09:00" }, ErrInvalidHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRosterRepo{roster: domain.DefaultProfessionals}
			svc := newTestService(repo)

			input := validInput()
			tt.mutate(input)

			_, err := svc.Create(context.Background(), input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, repo.saveCalls)
		})
	}
}

func TestUpdate(t *testing.T) {
	roster := append([]domain.Professional(nil), domain.DefaultProfessionals...)
	roster[0].Active = false

	repo := &fakeRosterRepo{roster: roster}
	svc := newTestService(repo)

	input := validInput()
	updated, err := svc.Update(context.Background(), roster[0].ID, input)
	require.NoError(t, err)

	assert.Equal(t, "Carla Mendes", updated.Name)
	assert.Equal(t, "Manicure", updated.Specialty)
	// Редактирование не трогает статус активности
	assert.False(t, updated.Active)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService(&fakeRosterRepo{roster: domain.DefaultProfessionals})

	_, err := svc.Update(context.Background(), 99, validInput())
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestSetActive(t *testing.T) {
	repo := &fakeRosterRepo{roster: domain.DefaultProfessionals}
	svc := newTestService(repo)

	id := domain.DefaultProfessionals[0].ID

	result, err := svc.SetActive(context.Background(), id, false)
	require.NoError(t, err)
	assert.False(t, result.Active)
	assert.False(t, repo.roster[0].Active)

	result, err = svc.SetActive(context.Background(), id, true)
	require.NoError(t, err)
	assert.True(t, result.Active)
}

func TestSetActive_NotFound(t *testing.T) {
	svc := newTestService(&fakeRosterRepo{roster: domain.DefaultProfessionals})

	_, err := svc.SetActive(context.Background(), 99, false)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestDelete(t *testing.T) {
	repo := &fakeRosterRepo{roster: domain.DefaultProfessionals}
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), domain.DefaultProfessionals[0].ID)
	require.NoError(t, err)

	require.Len(t, repo.roster, 1)
	assert.Equal(t, domain.DefaultProfessionals[1].ID, repo.roster[0].ID)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &fakeRosterRepo{roster: domain.DefaultProfessionals}
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
	assert.Zero(t, repo.saveCalls)
}
