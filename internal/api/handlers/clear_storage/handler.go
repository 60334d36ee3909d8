package clear_storage

import (
	"net/http"

	"github.com/avora-app/agenda-service/internal/api/handlers"
)

type Handler struct {
	service BackupService
	logger  Logger
}

func NewHandler(service BackupService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/backup/clear
// Стирает все данные; стартовые данные вернутся при следующем обращении
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearAll(r.Context()); err != nil {
		h.logger.Error("POST /backup/clear - Failed to clear storage: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /backup/clear - Storage cleared")
	w.WriteHeader(http.StatusNoContent)
}
