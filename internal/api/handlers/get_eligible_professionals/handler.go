package get_eligible_professionals

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avora-app/agenda-service/internal/api/handlers"
	getEligibleProfessionals "github.com/avora-app/agenda-service/internal/usecase/get_eligible_professionals"
)

const (
	msgInvalidYear  = "ano inválido"
	msgInvalidMonth = "mês inválido"
	msgInvalidDay   = "dia inválido"
	msgInvalidDate  = "data inválida"
)

type Handler struct {
	useCase GetEligibleProfessionalsUseCase
	logger  Logger
}

func NewHandler(useCase GetEligibleProfessionalsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/{year}/{month}/{day}/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		h.logger.Warn("GET /calendar/{y}/{m}/{d}/professionals - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(vars["month"])
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /calendar/{y}/{m}/{d}/professionals - Invalid month: %q", vars["month"])
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	day, err := strconv.Atoi(vars["day"])
	if err != nil {
		h.logger.Warn("GET /calendar/{y}/{m}/{d}/professionals - Invalid day: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getEligibleProfessionals.Request{
		Year:   year,
		Month0: month - 1,
		Day:    day,
	})
	if err != nil {
		switch {
		case errors.Is(err, getEligibleProfessionals.ErrInvalidDate):
			h.logger.Warn("GET /calendar/{y}/{m}/{d}/professionals - Invalid date: %d-%d-%d", year, month, day)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /calendar/{y}/{m}/{d}/professionals - Failed to get professionals: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/{y}/{m}/{d}/professionals - Professionals retrieved: date_key=%s, count=%d",
		result.DateKey, len(result.Professionals))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
