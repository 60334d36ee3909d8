package cancel_appointment

import "errors"

var (
	// ErrInvalidDateKey возвращается при некорректном ключе даты
	ErrInvalidDateKey = errors.New("cancel_appointment: invalid date key")

	// ErrAppointmentNotFound возвращается, когда запись отсутствует в бакете даты
	ErrAppointmentNotFound = errors.New("cancel_appointment: appointment not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_appointment: internal error")
)
