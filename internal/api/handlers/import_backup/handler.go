package import_backup

import (
	"errors"
	"io"
	"net/http"

	"github.com/avora-app/agenda-service/internal/api/handlers"
	backupService "github.com/avora-app/agenda-service/internal/service/backup"
)

const (
	msgUnreadableBody    = "não foi possível ler o corpo da requisição"
	msgMalformedSnapshot = "arquivo de backup inválido, nada foi importado"
)

// maxSnapshotBytes предел размера импортируемого снапшота
const maxSnapshotBytes = 16 << 20

// ImportResponse HTTP response model
type ImportResponse struct {
	KeysImported int `json:"keysImported"`
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

// Handle POST /api/v1/backup/import
// Тело запроса - снапшот в том виде, в котором его отдал экспорт
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxSnapshotBytes))
	if err != nil {
		h.logger.Warn("POST /backup/import - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgUnreadableBody)
		return
	}
	defer r.Body.Close()

	result, err := h.service.Import(r.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, backupService.ErrMalformedImport):
			h.logger.Warn("POST /backup/import - Malformed snapshot rejected: %v", err)
			handlers.RespondBadRequest(w, msgMalformedSnapshot)

		default:
			h.logger.Error("POST /backup/import - Failed to import: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /backup/import - Snapshot imported: keys=%d", result.KeysImported)
	handlers.RespondJSON(w, http.StatusOK, &ImportResponse{KeysImported: result.KeysImported})
}
