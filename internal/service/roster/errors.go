package roster

import "errors"

var (
	// ErrNameRequired возвращается, когда имя профессионала пустое
	ErrNameRequired = errors.New("roster.service: name is required")

	// ErrSpecialtyRequired возвращается, когда специальность пустая
	ErrSpecialtyRequired = errors.New("roster.service: specialty is required")

	// ErrNoWorkDays возвращается, когда не отмечен ни один рабочий день
	ErrNoWorkDays = errors.New("roster.service: at least one work day is required")

	// ErrInvalidHours возвращается, когда начало рабочего окна не раньше конца
	ErrInvalidHours = errors.New("roster.service: start time must be before end time")

	// ErrProfessionalNotFound возвращается, когда профессионал отсутствует в ростере
	ErrProfessionalNotFound = errors.New("roster.service: professional not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("roster.service: internal error")
)
