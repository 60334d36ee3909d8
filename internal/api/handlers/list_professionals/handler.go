package list_professionals

import (
	"net/http"

	"github.com/avora-app/agenda-service/internal/api/handlers"
)

type Handler struct {
	service RosterService
	logger  Logger
}

func NewHandler(service RosterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals
// Возвращает весь ростер, включая неактивных: экран управления
// показывает и тех, кого временно выключили
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /professionals - Failed to list roster: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /professionals - Roster listed: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
