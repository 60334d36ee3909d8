package appointments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestListForDay_SortedByTime(t *testing.T) {
	key := domain.NewDateKey(2024, 2, 5)
	book := domain.AppointmentBook{}.
		Insert(key, domain.Appointment{ID: 1, Time: "14:00"}).
		Insert(key, domain.Appointment{ID: 2, Time: "09:00"})

	svc := NewService(&fakeAppointmentsRepo{book: book}, nopLogger{})

	resp, err := svc.ListForDay(context.Background(), 2024, 2, 5)
	require.NoError(t, err)

	assert.Equal(t, "2024-3-5", resp.DateKey)
	require.Len(t, resp.Appointments, 2)
	assert.Equal(t, int64(2), resp.Appointments[0].ID)
	assert.Equal(t, int64(1), resp.Appointments[1].ID)
}

func TestListForDay_EmptyDay(t *testing.T) {
	svc := NewService(&fakeAppointmentsRepo{book: domain.AppointmentBook{}}, nopLogger{})

	resp, err := svc.ListForDay(context.Background(), 2024, 2, 5)
	require.NoError(t, err)

	// Пустой день - пустой список, не nil и не ошибка
	assert.NotNil(t, resp.Appointments)
	assert.Empty(t, resp.Appointments)
}

func TestListForDay_InvalidDate(t *testing.T) {
	svc := NewService(&fakeAppointmentsRepo{book: domain.AppointmentBook{}}, nopLogger{})

	_, err := svc.ListForDay(context.Background(), 2024, 12, 1)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.ListForDay(context.Background(), 2024, 1, 30)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
