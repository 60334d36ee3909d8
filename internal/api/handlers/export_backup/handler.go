package export_backup

import (
	"fmt"
	"net/http"
	"time"

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

// Handle GET /api/v1/backup/export
// Отдает снапшот как скачиваемый файл: тот же формат принимает импорт
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.Export(r.Context())
	if err != nil {
		h.logger.Error("GET /backup/export - Failed to export: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	filename := fmt.Sprintf("avora-backup-%s.json", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)

	h.logger.Info("GET /backup/export - Snapshot exported: bytes=%d", len(data))
}
