package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfessional_IsWorkingOn(t *testing.T) {
	p := Professional{
		ID:       1,
		Name:     "Maria Silva",
		WorkDays: WorkDays{Monday: true, Tuesday: true, Wednesday: true, Thursday: true, Friday: true},
		Active:   true,
	}

	// 4 марта 2024 - понедельник, 9 марта - суббота
	assert.True(t, p.IsWorkingOn(2024, 2, 4))
	assert.False(t, p.IsWorkingOn(2024, 2, 9))
	assert.False(t, p.IsWorkingOn(2024, 2, 10)) // воскресенье
}

func TestProfessional_IsWorkingOn_InactiveFailsClosed(t *testing.T) {
	p := Professional{
		ID:       1,
		WorkDays: WorkDays{Monday: true, Tuesday: true, Wednesday: true, Thursday: true, Friday: true, Saturday: true, Sunday: true},
		Active:   false,
	}

	// Неактивный профессионал не работает даже при полном расписании
	for day := 4; day <= 10; day++ {
		assert.False(t, p.IsWorkingOn(2024, 2, day))
	}
}

func TestFindProfessional(t *testing.T) {
	roster := DefaultProfessionals

	found := FindProfessional(roster, 2)
	assert.NotNil(t, found)
	assert.Equal(t, "João Santos", found.Name)

	assert.Nil(t, FindProfessional(roster, 99))
}

func TestEligibleProfessionals(t *testing.T) {
	roster := DefaultProfessionals

	// 4 марта 2024 - понедельник: работает только Maria (João со вторника)
	monday := EligibleProfessionals(roster, 2024, 2, 4)
	assert.Len(t, monday, 1)
	assert.Equal(t, "Maria Silva", monday[0].Name)

	// 5 марта - вторник: работают оба, порядок ростера сохранен
	tuesday := EligibleProfessionals(roster, 2024, 2, 5)
	assert.Len(t, tuesday, 2)
	assert.Equal(t, "Maria Silva", tuesday[0].Name)
	assert.Equal(t, "João Santos", tuesday[1].Name)

	// 10 марта - воскресенье: салон без персонала, пустой непустой-nil список
	sunday := EligibleProfessionals(roster, 2024, 2, 10)
	assert.NotNil(t, sunday)
	assert.Empty(t, sunday)
}

func TestWorkDays_HasAny(t *testing.T) {
	assert.False(t, WorkDays{}.HasAny())
	assert.True(t, WorkDays{Sunday: true}.HasAny())
}

func TestIsCanonicalSlot(t *testing.T) {
	assert.True(t, IsCanonicalSlot("08:00"))
	assert.True(t, IsCanonicalSlot("17:30"))

	// Обеденный перерыв и край диапазона не входят в сетку
	assert.False(t, IsCanonicalSlot("12:00"))
	assert.False(t, IsCanonicalSlot("12:30"))
	assert.False(t, IsCanonicalSlot("18:00"))
	assert.False(t, IsCanonicalSlot("09:15"))
}
