package get_day_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avora-app/agenda-service/internal/api/handlers"
	appointmentsService "github.com/avora-app/agenda-service/internal/service/appointments"
)

const (
	msgInvalidYear  = "ano inválido"
	msgInvalidMonth = "mês inválido"
	msgInvalidDay   = "dia inválido"
	msgInvalidDate  = "data inválida"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/{year}/{month}/{day}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		h.logger.Warn("GET /calendar/{y}/{m}/{d}/appointments - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(vars["month"])
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /calendar/{y}/{m}/{d}/appointments - Invalid month: %q", vars["month"])
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	day, err := strconv.Atoi(vars["day"])
	if err != nil {
		h.logger.Warn("GET /calendar/{y}/{m}/{d}/appointments - Invalid day: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	result, err := h.service.ListForDay(r.Context(), year, month-1, day)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidDate):
			h.logger.Warn("GET /calendar/{y}/{m}/{d}/appointments - Invalid date: %d-%d-%d", year, month, day)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /calendar/{y}/{m}/{d}/appointments - Failed to list: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/{y}/{m}/{d}/appointments - Listed: date_key=%s, count=%d",
		result.DateKey, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
