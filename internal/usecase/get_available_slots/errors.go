package get_available_slots

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной календарной дате
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrProfessionalNotFound возвращается, когда профессионал отсутствует в ростере
	ErrProfessionalNotFound = errors.New("get_available_slots: professional not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
