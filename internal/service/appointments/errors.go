package appointments

import "errors"

var (
	// ErrInvalidDate возвращается, когда компоненты даты не образуют
	// существующий календарный день
	ErrInvalidDate = errors.New("appointments.service: invalid date")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments.service: internal error")
)
