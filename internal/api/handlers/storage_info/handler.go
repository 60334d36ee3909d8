package storage_info

import (
	"net/http"

	"github.com/avora-app/agenda-service/internal/api/handlers"
)

// InfoResponse HTTP response model
type InfoResponse struct {
	Keys          int    `json:"keys"`
	Professionals int    `json:"professionals"`
	Appointments  int    `json:"appointments"`
	Users         int    `json:"users"`
	StorageSize   string `json:"storageSize"`
}

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

// Handle GET /api/v1/backup/info
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Info(r.Context())
	if err != nil {
		h.logger.Error("GET /backup/info - Failed to collect info: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /backup/info - Info collected: keys=%d, size=%s", result.Keys, result.StorageSize)
	handlers.RespondJSON(w, http.StatusOK, &InfoResponse{
		Keys:          result.Keys,
		Professionals: result.Professionals,
		Appointments:  result.Appointments,
		Users:         result.Users,
		StorageSize:   result.StorageSize,
	})
}
