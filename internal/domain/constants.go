package domain

import "github.com/avora-app/agenda-service/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxClientNameLength = 200
	MaxNameLength       = 200
	MaxSpecialtyLength  = 200
)

// CanonicalSlots фиксированный упорядоченный список получасовых слотов
// Обеденный перерыв 12:00-12:30 отсутствует - салон закрыт
var CanonicalSlots = []types.TimeString{
	"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
}

// IsCanonicalSlot проверяет, что время входит в фиксированный список слотов
func IsCanonicalSlot(t types.TimeString) bool {
	for _, slot := range CanonicalSlots {
		if slot == t {
			return true
		}
	}
	return false
}

// DefaultServices статический каталог услуг
// Не редактируется пользователем; записи ссылаются на услуги по ID
// и хранят снапшот названия и цены
var DefaultServices = []Service{
	{ID: 1, Name: "Corte de Cabelo", DurationMinutes: 30, Price: 50},
	{ID: 2, Name: "Barba", DurationMinutes: 20, Price: 30},
	{ID: 3, Name: "Coloração", DurationMinutes: 60, Price: 120},
	{ID: 4, Name: "Manicure", DurationMinutes: 45, Price: 40},
	{ID: 5, Name: "Pedicure", DurationMinutes: 45, Price: 45},
}

// DefaultProfessionals стартовый ростер, записываемый при первом запуске,
// когда ключ ростера отсутствует в хранилище
var DefaultProfessionals = []Professional{
	{
		ID:        1,
		Name:      "Maria Silva",
		Specialty: "Cabeleireira",
		WorkDays: WorkDays{
			Monday:    true,
			Tuesday:   true,
			Wednesday: true,
			Thursday:  true,
			Friday:    true,
		},
		StartTime: "09:00",
		EndTime:   "17:00",
		Active:    true,
	},
	{
		ID:        2,
		Name:      "João Santos",
		Specialty: "Barbeiro",
		WorkDays: WorkDays{
			Tuesday:   true,
			Wednesday: true,
			Thursday:  true,
			Friday:    true,
			Saturday:  true,
		},
		StartTime: "10:00",
		EndTime:   "19:00",
		Active:    true,
	},
}
