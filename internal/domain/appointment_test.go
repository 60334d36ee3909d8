package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avora-app/agenda-service/pkg/types"
)

func sampleAppointment(id int64, timeSlot string, professionalID int64) Appointment {
	return Appointment{
		ID:               id,
		ClientName:       "Cliente Teste",
		Time:             types.TimeString(timeSlot),
		ProfessionalID:   professionalID,
		ProfessionalName: "Maria Silva",
		ServiceID:        1,
		ServiceName:      "Corte de Cabelo",
		Price:            50,
	}
}

func TestAppointmentBook_IsSlotFree(t *testing.T) {
	key := NewDateKey(2024, 2, 7)
	book := AppointmentBook{}.Insert(key, sampleAppointment(1, "09:00", 1))

	// Конфликт - только точное совпадение пары (время, профессионал)
	assert.False(t, book.IsSlotFree(key, "09:00", 1))
	assert.True(t, book.IsSlotFree(key, "09:00", 2))
	assert.True(t, book.IsSlotFree(key, "09:30", 1))
	assert.True(t, book.IsSlotFree(NewDateKey(2024, 2, 8), "09:00", 1))
}

func TestAppointmentBook_Insert_SortsByTime(t *testing.T) {
	key := NewDateKey(2024, 2, 7)

	book := AppointmentBook{}.
		Insert(key, sampleAppointment(1, "15:00", 1)).
		Insert(key, sampleAppointment(2, "08:30", 1)).
		Insert(key, sampleAppointment(3, "10:00", 2))

	bucket := book.ForDate(key)
	require.Len(t, bucket, 3)
	assert.Equal(t, int64(2), bucket[0].ID)
	assert.Equal(t, int64(3), bucket[1].ID)
	assert.Equal(t, int64(1), bucket[2].ID)
}

func TestAppointmentBook_Insert_DoesNotMutateOriginal(t *testing.T) {
	key := NewDateKey(2024, 2, 7)
	original := AppointmentBook{}.Insert(key, sampleAppointment(1, "09:00", 1))

	_ = original.Insert(key, sampleAppointment(2, "10:00", 1))

	assert.Equal(t, 1, original.CountForDate(key))
}

func TestAppointmentBook_Remove(t *testing.T) {
	key := NewDateKey(2024, 2, 7)
	book := AppointmentBook{}.
		Insert(key, sampleAppointment(1, "09:00", 1)).
		Insert(key, sampleAppointment(2, "10:00", 1))

	updated, found := book.Remove(key, 1)
	require.True(t, found)
	assert.Equal(t, 1, updated.CountForDate(key))
	assert.Equal(t, int64(2), updated.ForDate(key)[0].ID)

	// Исходная книга не изменилась
	assert.Equal(t, 2, book.CountForDate(key))
}

func TestAppointmentBook_Remove_DeletesEmptyBucket(t *testing.T) {
	key := NewDateKey(2024, 2, 7)
	book := AppointmentBook{}.Insert(key, sampleAppointment(1, "09:00", 1))

	updated, found := book.Remove(key, 1)
	require.True(t, found)

	// Пустой бакет удален целиком: HasAny смотрит на наличие ключа
	assert.False(t, updated.HasAny(key))
	assert.Equal(t, 0, len(updated))
}

func TestAppointmentBook_Remove_NotFound(t *testing.T) {
	key := NewDateKey(2024, 2, 7)
	book := AppointmentBook{}.Insert(key, sampleAppointment(1, "09:00", 1))

	// Неизвестный ID в существующем бакете
	updated, found := book.Remove(key, 99)
	assert.False(t, found)
	assert.Equal(t, 1, updated.CountForDate(key))

	// Отсутствующий бакет
	_, found = book.Remove(NewDateKey(2024, 2, 8), 1)
	assert.False(t, found)
}

func TestAppointmentBook_Clone(t *testing.T) {
	key := NewDateKey(2024, 2, 7)
	book := AppointmentBook{}.Insert(key, sampleAppointment(1, "09:00", 1))

	cloned := book.Clone()
	cloned[key.String()][0].ClientName = "Outro Cliente"

	assert.Equal(t, "Cliente Teste", book.ForDate(key)[0].ClientName)
}
