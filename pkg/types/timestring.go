package types

import (
	"fmt"
	"regexp"
	"time"
)

// TimeString время в формате "HH:MM" (24 часа, с ведущими нулями)
// Благодаря фиксированному формату строки сравниваются лексикографически
type TimeString string

var timeStringPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString валидирует строку и создает TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	if !timeStringPattern.MatchString(s) {
		return "", fmt.Errorf("invalid time string format: %q", s)
	}
	return TimeString(s), nil
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsValid проверяет, что значение соответствует формату "HH:MM"
func (t TimeString) IsValid() bool {
	return timeStringPattern.MatchString(string(t))
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes возвращает время через minutes минут
// Возвращает ошибку при выходе за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return "", fmt.Errorf("invalid time string format: %q", t)
	}

	shifted := parsed.Add(time.Duration(minutes) * time.Minute)
	if shifted.Day() != parsed.Day() {
		return "", fmt.Errorf("time %q + %d minutes crosses midnight", t, minutes)
	}

	return TimeString(shifted.Format("15:04")), nil
}
