package get_month_overview

import "errors"

var (
	// ErrInvalidMonth возвращается при некорректном месяце
	ErrInvalidMonth = errors.New("get_month_overview: invalid month")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_month_overview: internal error")
)
