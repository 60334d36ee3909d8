package get_eligible_professionals

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной календарной дате
	ErrInvalidDate = errors.New("get_eligible_professionals: invalid date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_eligible_professionals: internal error")
)
