package create_appointment

import (
	"fmt"
	"strings"

	"github.com/avora-app/agenda-service/internal/calendar"
	"github.com/avora-app/agenda-service/internal/domain"
)

// validateRequest проверяет входные данные запроса
// Все предусловия проверяются до каких-либо изменений состояния:
// отклоненный запрос оставляет книгу записей нетронутой
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ClientName) == "" {
		return ErrClientNameRequired
	}

	if err := validateDate(req.Year, req.Month0, req.Day); err != nil {
		return err
	}

	if !domain.IsCanonicalSlot(req.Time) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeSlot, req.Time)
	}

	if req.ProfessionalID <= 0 {
		return ErrProfessionalNotFound
	}

	if req.ServiceID <= 0 {
		return ErrServiceNotFound
	}

	return nil
}

// validateDate проверяет, что компоненты образуют существующую календарную дату
func validateDate(year, month0, day int) error {
	if month0 < 0 || month0 > 11 {
		return fmt.Errorf("%w: month0=%d out of range", ErrInvalidDate, month0)
	}
	if day < 1 || day > calendar.DaysInMonth(year, month0) {
		return fmt.Errorf("%w: day=%d out of range for %d-%d", ErrInvalidDate, day, year, month0+1)
	}
	return nil
}
