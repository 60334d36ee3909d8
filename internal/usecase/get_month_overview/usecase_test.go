package get_month_overview

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avora-app/agenda-service/internal/calendar"
	"github.com/avora-app/agenda-service/internal/domain"
)

type fakeAppointmentsRepo struct {
	book domain.AppointmentBook
}

func (f *fakeAppointmentsRepo) Load(_ context.Context) (domain.AppointmentBook, error) {
	return f.book, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_AnnotatesGrid(t *testing.T) {
	key := domain.NewDateKey(2024, 2, 7)
	book := domain.AppointmentBook{}.
		Insert(key, domain.Appointment{ID: 1, Time: "09:00", ProfessionalID: 1}).
		Insert(key, domain.Appointment{ID: 2, Time: "10:00", ProfessionalID: 2})

	uc := NewUseCase(&fakeAppointmentsRepo{book: book}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month0: 2})
	require.NoError(t, err)

	// Сетка: заполнители + все дни месяца
	leading := calendar.FirstWeekday(2024, 2)
	require.Len(t, resp.Cells, leading+calendar.DaysInMonth(2024, 2))

	// Заполнители пустые и без записей
	for _, cell := range resp.Cells[:leading] {
		assert.Zero(t, cell.Day)
		assert.Zero(t, cell.Appointments)
		assert.False(t, cell.HasAppointments)
	}

	// 7 марта аннотировано двумя записями
	seventh := resp.Cells[leading+6]
	assert.Equal(t, 7, seventh.Day)
	assert.Equal(t, 2, seventh.Appointments)
	assert.True(t, seventh.HasAppointments)

	// Соседний день пуст
	eighth := resp.Cells[leading+7]
	assert.Equal(t, 8, eighth.Day)
	assert.Zero(t, eighth.Appointments)
	assert.False(t, eighth.HasAppointments)
}

func TestExecute_InvalidMonth(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentsRepo{book: domain.AppointmentBook{}}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Year: 2024, Month0: 12})
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = uc.Execute(context.Background(), &Request{Year: 2024, Month0: -1})
	assert.ErrorIs(t, err, ErrInvalidMonth)
}
