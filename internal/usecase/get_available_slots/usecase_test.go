package get_available_slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avora-app/agenda-service/internal/domain"
)

type fakeRosterRepo struct {
	roster []domain.Professional
}

func (f *fakeRosterRepo) Load(_ context.Context) ([]domain.Professional, error) {
	return f.roster, nil
}

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

func newTestUseCase(book domain.AppointmentBook) *UseCase {
	return NewUseCase(
		&fakeRosterRepo{roster: domain.DefaultProfessionals},
		&fakeAppointmentsRepo{book: book},
		nopLogger{},
	)
}

func TestExecute_EmptyDayAllSlotsFree(t *testing.T) {
	uc := newTestUseCase(domain.AppointmentBook{})

	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month0: 2, Day: 5, ProfessionalID: 1})
	require.NoError(t, err)

	assert.Equal(t, "2024-3-5", resp.DateKey)
	assert.Equal(t, "Maria Silva", resp.ProfessionalName)
	require.Len(t, resp.Slots, len(domain.CanonicalSlots))

	for _, slot := range resp.Slots {
		assert.False(t, slot.Taken, "slot %s should be free", slot.Time)
	}

	// Порядок слотов совпадает с канонической сеткой
	assert.Equal(t, "08:00", resp.Slots[0].Time.String())
	assert.Equal(t, "17:30", resp.Slots[len(resp.Slots)-1].Time.String())
}

func TestExecute_MarksTakenSlots(t *testing.T) {
	key := domain.NewDateKey(2024, 2, 5)
	book := domain.AppointmentBook{}.
		Insert(key, domain.Appointment{ID: 1, Time: "09:00", ProfessionalID: 1}).
		Insert(key, domain.Appointment{ID: 2, Time: "10:00", ProfessionalID: 2})

	uc := newTestUseCase(book)

	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month0: 2, Day: 5, ProfessionalID: 1})
	require.NoError(t, err)

	taken := map[string]bool{}
	for _, slot := range resp.Slots {
		taken[slot.Time.String()] = slot.Taken
	}

	// Занят только слот этого профессионала; запись другого не мешает
	assert.True(t, taken["09:00"])
	assert.False(t, taken["10:00"])
	assert.False(t, taken["08:00"])
}

func TestExecute_ReturnsWorkingWindowAsInfo(t *testing.T) {
	// Окно работы возвращается справочно и не фильтрует сетку:
	// Maria работает с 09:00, но слот 08:00 все равно присутствует
	uc := newTestUseCase(domain.AppointmentBook{})

	resp, err := uc.Execute(context.Background(), &Request{Year: 2024, Month0: 2, Day: 5, ProfessionalID: 1})
	require.NoError(t, err)

	assert.Equal(t, "09:00", resp.StartTime.String())
	assert.Equal(t, "17:00", resp.EndTime.String())
	assert.Equal(t, "08:00", resp.Slots[0].Time.String())
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	uc := newTestUseCase(domain.AppointmentBook{})

	_, err := uc.Execute(context.Background(), &Request{Year: 2024, Month0: 2, Day: 5, ProfessionalID: 99})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_InvalidDate(t *testing.T) {
	uc := newTestUseCase(domain.AppointmentBook{})

	_, err := uc.Execute(context.Background(), &Request{Year: 2024, Month0: 12, Day: 5, ProfessionalID: 1})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{Year: 2023, Month0: 1, Day: 29, ProfessionalID: 1})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
