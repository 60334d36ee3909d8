package create_appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avora-app/agenda-service/internal/domain"
)

type fakeRosterRepo struct {
	roster []domain.Professional
	err    error
}

func (f *fakeRosterRepo) Load(_ context.Context) ([]domain.Professional, error) {
	return f.roster, f.err
}

type fakeAppointmentsRepo struct {
	book      domain.AppointmentBook
	saveErr   error
	saved     domain.AppointmentBook
	saveCalls int
}

func (f *fakeAppointmentsRepo) Load(_ context.Context) (domain.AppointmentBook, error) {
	return f.book, nil
}

func (f *fakeAppointmentsRepo) Save(_ context.Context, book domain.AppointmentBook) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = book
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		Year:           2024,
		Month0:         2,
		Day:            5, // вторник: работают оба профессионала
		Time:           "09:00",
		ProfessionalID: 1,
		ServiceID:      1,
		ClientName:     "Ana Costa",
	}
}

func newTestUseCase(book domain.AppointmentBook) (*UseCase, *fakeAppointmentsRepo) {
	appointments := &fakeAppointmentsRepo{book: book}
	uc := NewUseCase(&fakeRosterRepo{roster: domain.DefaultProfessionals}, appointments, nopLogger{})
	return uc, appointments
}

func TestExecute_CreatesAppointmentWithSnapshots(t *testing.T) {
	uc, appointments := newTestUseCase(domain.AppointmentBook{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "2024-3-5", resp.DateKey)
	assert.Equal(t, "09:00", resp.Time.String())
	assert.Equal(t, "Ana Costa", resp.ClientName)
	assert.Positive(t, resp.ID)

	// Снапшоты имени, услуги и цены на момент создания
	assert.Equal(t, "Maria Silva", resp.ProfessionalName)
	assert.Equal(t, "Corte de Cabelo", resp.ServiceName)
	assert.Equal(t, float64(50), resp.Price)

	// Запись дошла до репозитория
	require.NotNil(t, appointments.saved)
	assert.Equal(t, 1, appointments.saved.CountForDate(domain.NewDateKey(2024, 2, 5)))
}

func TestExecute_TrimsClientName(t *testing.T) {
	uc, _ := newTestUseCase(domain.AppointmentBook{})

	req := validRequest()
	req.ClientName = "  Ana Costa  "

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Ana Costa", resp.ClientName)
}

func TestExecute_SlotTaken(t *testing.T) {
	key := domain.NewDateKey(2024, 2, 5)
	book := domain.AppointmentBook{}.Insert(key, domain.Appointment{
		ID:             100,
		Time:           "09:00",
		ProfessionalID: 1,
	})

	uc, appointments := newTestUseCase(book)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)

	// Книга не сохранялась: состояние осталось нетронутым
	assert.Zero(t, appointments.saveCalls)
}

func TestExecute_SameSlotDifferentProfessional(t *testing.T) {
	key := domain.NewDateKey(2024, 2, 5)
	book := domain.AppointmentBook{}.Insert(key, domain.Appointment{
		ID:             100,
		Time:           "09:00",
		ProfessionalID: 1,
	})

	uc, _ := newTestUseCase(book)

	req := validRequest()
	req.ProfessionalID = 2

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "João Santos", resp.ProfessionalName)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{"blank client name", func(r *Request) { r.ClientName = "   " }, ErrClientNameRequired},
		{"month out of range", func(r *Request) { r.Month0 = 12 }, ErrInvalidDate},
		{"day out of range", func(r *Request) { r.Day = 32 }, ErrInvalidDate},
		{"nonexistent date", func(r *Request) { r.Month0 = 1; r.Day = 30 }, ErrInvalidDate},
		{"lunch break slot", func(r *Request) { r.Time = "12:00" }, ErrInvalidTimeSlot},
		{"off-grid slot", func(r *Request) { r.Time = "09:15" }, ErrInvalidTimeSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, appointments := newTestUseCase(domain.AppointmentBook{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, appointments.saveCalls)
		})
	}
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	uc, _ := newTestUseCase(domain.AppointmentBook{})

	req := validRequest()
	req.ProfessionalID = 99

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc, _ := newTestUseCase(domain.AppointmentBook{})

	req := validRequest()
	req.ServiceID = 99

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_SaveFailureStillSucceeds(t *testing.T) {
	appointments := &fakeAppointmentsRepo{
		book:    domain.AppointmentBook{},
		saveErr: errors.New("disk full"),
	}
	uc := NewUseCase(&fakeRosterRepo{roster: domain.DefaultProfessionals}, appointments, nopLogger{})

	// Сбой персистентности логируется, но операция считается выполненной
	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Positive(t, resp.ID)
	assert.Equal(t, 1, appointments.saveCalls)
}

func TestExecute_FreshIDAvoidsCollision(t *testing.T) {
	uc, appointments := newTestUseCase(domain.AppointmentBook{})

	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Вторая запись в тот же бакет в ту же миллисекунду не должна
	// переиспользовать ID первой
	uc2 := NewUseCase(&fakeRosterRepo{roster: domain.DefaultProfessionals}, &fakeAppointmentsRepo{book: appointments.saved}, nopLogger{})

	req := validRequest()
	req.Time = "09:30"

	second, err := uc2.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}
