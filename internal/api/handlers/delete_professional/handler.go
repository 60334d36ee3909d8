package delete_professional

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avora-app/agenda-service/internal/api/handlers"
	rosterService "github.com/avora-app/agenda-service/internal/service/roster"
)

const (
	msgInvalidProfessionalID = "ID do profissional inválido"
	msgProfessionalNotFound  = "profissional não encontrado"
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

// Handle DELETE /api/v1/professionals/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /professionals/{id} - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, rosterService.ErrProfessionalNotFound):
			h.logger.Warn("DELETE /professionals/{id} - Professional not found: id=%d", id)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		default:
			h.logger.Error("DELETE /professionals/{id} - Failed to delete professional: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /professionals/{id} - Professional deleted: id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}
