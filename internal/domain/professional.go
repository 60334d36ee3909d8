package domain

import (
	"time"

	"github.com/avora-app/agenda-service/pkg/types"
)

// WorkDays недельное расписание профессионала: день недели -> работает или нет
// JSON ключи соответствуют legacy формату хранилища (monday..sunday)
type WorkDays struct {
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`
}

// On возвращает true, если день недели отмечен рабочим
func (w WorkDays) On(weekday time.Weekday) bool {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return false
	}
}

// HasAny возвращает true, если отмечен хотя бы один рабочий день
func (w WorkDays) HasAny() bool {
	return w.Monday || w.Tuesday || w.Wednesday || w.Thursday ||
		w.Friday || w.Saturday || w.Sunday
}

// Professional профессионал с фиксированным недельным расписанием
type Professional struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	Specialty string           `json:"specialty"`
	WorkDays  WorkDays         `json:"workDays"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
	Active    bool             `json:"active"`
}

// IsWorkingOn возвращает true, если профессионал работает в указанную дату
// Неактивный профессионал не работает ни в какой день (fail closed)
func (p *Professional) IsWorkingOn(year, month0, day int) bool {
	if !p.Active {
		return false
	}

	weekday := time.Date(year, time.Month(month0+1), day, 0, 0, 0, 0, time.Local).Weekday()
	return p.WorkDays.On(weekday)
}

// FindProfessional ищет профессионала в ростере по ID
// Возвращает nil, если не найден
func FindProfessional(roster []Professional, id int64) *Professional {
	for i := range roster {
		if roster[i].ID == id {
			return &roster[i]
		}
	}
	return nil
}

// EligibleProfessionals возвращает профессионалов, которые могут работать
// в указанную дату: активных и с отмеченным днём недели, в порядке ростера
// Пустой результат - нормальный ответ, не ошибка
func EligibleProfessionals(roster []Professional, year, month0, day int) []Professional {
	eligible := make([]Professional, 0)
	for _, p := range roster {
		if p.IsWorkingOn(year, month0, day) {
			eligible = append(eligible, p)
		}
	}
	return eligible
}
