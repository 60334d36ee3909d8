package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avora-app/agenda-service/internal/api/handlers"
	getAvailableSlots "github.com/avora-app/agenda-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidYear           = "ano inválido"
	msgInvalidMonth          = "mês inválido"
	msgInvalidDay            = "dia inválido"
	msgMissingProfessionalID = "ID do profissional é obrigatório"
	msgInvalidProfessionalID = "ID do profissional inválido"
	msgInvalidDate           = "data inválida"
	msgProfessionalNotFound  = "profissional não encontrado"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/{year}/{month}/{day}/slots
// Query params: professionalId (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		h.logger.Warn("GET /calendar/{y}/{m}/{d}/slots - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(vars["month"])
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /calendar/{y}/{m}/{d}/slots - Invalid month: %q", vars["month"])
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	day, err := strconv.Atoi(vars["day"])
	if err != nil {
		h.logger.Warn("GET /calendar/{y}/{m}/{d}/slots - Invalid day: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	professionalIDStr := r.URL.Query().Get("professionalId")
	if professionalIDStr == "" {
		h.logger.Warn("GET /calendar/{y}/{m}/{d}/slots - Missing professional ID")
		handlers.RespondBadRequest(w, msgMissingProfessionalID)
		return
	}

	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /calendar/{y}/{m}/{d}/slots - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Year:           year,
		Month0:         month - 1,
		Day:            day,
		ProfessionalID: professionalID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /calendar/{y}/{m}/{d}/slots - Invalid date: %d-%d-%d", year, month, day)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrProfessionalNotFound):
			h.logger.Warn("GET /calendar/{y}/{m}/{d}/slots - Professional not found: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		default:
			h.logger.Error("GET /calendar/{y}/{m}/{d}/slots - Failed to get slots: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/{y}/{m}/{d}/slots - Slots retrieved: date_key=%s, professional_id=%d, slots_count=%d",
		result.DateKey, professionalID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
