// Package calendar чистая календарная математика: дни в месяце, день недели
// первого числа, сетка месяца, сдвиг месяца с переносом года
// Без состояния и побочных эффектов
package calendar

import (
	"iter"
	"time"
)

// Cell ячейка сетки месяца
// Day == 0 означает пустую ячейку-заполнитель перед первым числом
type Cell struct {
	Day int
}

// IsEmpty возвращает true для ячейки-заполнителя
func (c Cell) IsEmpty() bool {
	return c.Day == 0
}

// DaysInMonth возвращает количество дней в месяце (month0: 0 = январь)
// Используется правило "нулевой день следующего месяца": time.Date
// нормализует выход за границы месяца, включая високосные годы
func DaysInMonth(year, month0 int) int {
	return time.Date(year, time.Month(month0+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday возвращает день недели первого числа месяца
// 0 = воскресенье .. 6 = суббота
func FirstWeekday(year, month0 int) int {
	return int(time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// MonthGrid возвращает последовательность ячеек месяца для сетки 7 колонок:
// сначала FirstWeekday пустых ячеек, затем дни 1..DaysInMonth
// Последовательность ленивая и перезапускаемая - пересчитывается при каждом
// обходе, без кешированного состояния
func MonthGrid(year, month0 int) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		leading := FirstWeekday(year, month0)
		for i := 0; i < leading; i++ {
			if !yield(Cell{}) {
				return
			}
		}

		days := DaysInMonth(year, month0)
		for day := 1; day <= days; day++ {
			if !yield(Cell{Day: day}) {
				return
			}
		}
	}
}

// ShiftMonth сдвигает (year, month0) на delta месяцев с переносом года
// month0 остается в диапазоне 0..11 при любом delta
func ShiftMonth(year, month0, delta int) (int, int) {
	total := year*12 + month0 + delta
	newYear := total / 12
	newMonth0 := total % 12
	if newMonth0 < 0 {
		newMonth0 += 12
		newYear--
	}
	return newYear, newMonth0
}
