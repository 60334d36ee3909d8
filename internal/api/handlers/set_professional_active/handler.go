package set_professional_active

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avora-app/agenda-service/internal/api/handlers"
	rosterService "github.com/avora-app/agenda-service/internal/service/roster"
)

const (
	msgInvalidRequestBody    = "corpo da requisição inválido"
	msgInvalidProfessionalID = "ID do profissional inválido"
	msgActiveRequired        = "campo active é obrigatório"
	msgProfessionalNotFound  = "profissional não encontrado"
)

// SetActiveRequest HTTP request model
// Active - указатель: отсутствие поля в PATCH отличается от false
type SetActiveRequest struct {
	Active *bool `json:"active"`
}

// SetActiveResponse HTTP response model
type SetActiveResponse struct {
	ID     int64 `json:"id"`
	Active bool  `json:"active"`
}

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

// Handle PATCH /api/v1/professionals/{id}/active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /professionals/{id}/active - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	var req SetActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /professionals/{id}/active - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Active == nil {
		h.logger.Warn("PATCH /professionals/{id}/active - Missing active field: id=%d", id)
		handlers.RespondBadRequest(w, msgActiveRequired)
		return
	}

	result, err := h.service.SetActive(r.Context(), id, *req.Active)
	if err != nil {
		switch {
		case errors.Is(err, rosterService.ErrProfessionalNotFound):
			h.logger.Warn("PATCH /professionals/{id}/active - Professional not found: id=%d", id)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		default:
			h.logger.Error("PATCH /professionals/{id}/active - Failed to set active: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /professionals/{id}/active - Professional toggled: id=%d, active=%t",
		result.ID, result.Active)
	handlers.RespondJSON(w, http.StatusOK, &SetActiveResponse{ID: result.ID, Active: result.Active})
}
