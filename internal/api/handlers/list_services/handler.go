package list_services

import (
	"net/http"

	"github.com/avora-app/agenda-service/internal/api/handlers"
	"github.com/avora-app/agenda-service/internal/domain"
)

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Duration int     `json:"duration"` // Длительность в минутах (справочная)
	Price    float64 `json:"price"`
}

// Handler отдает каталог услуг
// Каталог статичен и зашит в сборку; ростер при этом редактируется,
// это сознательная асимметрия
type Handler struct {
	catalog []domain.Service
	logger  Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		catalog: domain.DefaultServices,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services := make([]ServiceResponse, len(h.catalog))
	for i, svc := range h.catalog {
		services[i] = ServiceResponse{
			ID:       svc.ID,
			Name:     svc.Name,
			Duration: svc.DurationMinutes,
			Price:    svc.Price,
		}
	}

	h.logger.Info("GET /services - Catalog served: count=%d", len(services))
	handlers.RespondJSON(w, http.StatusOK, services)
}
