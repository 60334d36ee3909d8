package get_month_overview

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avora-app/agenda-service/internal/api/handlers"
	getMonthOverview "github.com/avora-app/agenda-service/internal/usecase/get_month_overview"
)

const (
	msgInvalidYear  = "ano inválido"
	msgInvalidMonth = "mês inválido"
)

type Handler struct {
	useCase GetMonthOverviewUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthOverviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/{year}/{month}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		h.logger.Warn("GET /calendar/{y}/{m} - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(vars["month"])
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /calendar/{y}/{m} - Invalid month: %q", vars["month"])
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getMonthOverview.Request{
		Year:   year,
		Month0: month - 1,
	})
	if err != nil {
		switch {
		case errors.Is(err, getMonthOverview.ErrInvalidMonth):
			h.logger.Warn("GET /calendar/{y}/{m} - Invalid month: %d", month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /calendar/{y}/{m} - Failed to build overview: year=%d, month=%d, error=%v",
				year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/{y}/{m} - Overview built: year=%d, month=%d, cells=%d",
		year, month, len(result.Cells))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
