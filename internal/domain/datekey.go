package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// DateKey ключ партиции хранилища агендамент: одна календарная дата
// Строковый формат - legacy "{year}-{month1}-{day}" (месяц 1-базный,
// без ведущих нулей, например "2024-3-7"). Формат сохранен как есть для
// совместимости со старыми экспортами; лексикографически ключи не сортируются,
// и нигде в системе такая сортировка не используется
type DateKey struct {
	Year   int
	Month0 int // 0-базный месяц (0 = январь), как во всей календарной математике
	Day    int
}

// NewDateKey создает ключ даты из компонентов с 0-базным месяцем
func NewDateKey(year, month0, day int) DateKey {
	return DateKey{Year: year, Month0: month0, Day: day}
}

// String возвращает legacy строковое представление ключа
func (k DateKey) String() string {
	return fmt.Sprintf("%d-%d-%d", k.Year, k.Month0+1, k.Day)
}

// ParseDateKey разбирает legacy строку ключа даты
func ParseDateKey(s string) (DateKey, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return DateKey{}, fmt.Errorf("invalid date key format: %q", s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return DateKey{}, fmt.Errorf("invalid date key year: %q", s)
	}

	month1, err := strconv.Atoi(parts[1])
	if err != nil || month1 < 1 || month1 > 12 {
		return DateKey{}, fmt.Errorf("invalid date key month: %q", s)
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return DateKey{}, fmt.Errorf("invalid date key day: %q", s)
	}

	return DateKey{Year: year, Month0: month1 - 1, Day: day}, nil
}
