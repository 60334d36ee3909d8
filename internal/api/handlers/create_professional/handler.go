package create_professional

import (
	"errors"
	"net/http"

	"github.com/avora-app/agenda-service/internal/api/handlers"
	rosterService "github.com/avora-app/agenda-service/internal/service/roster"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidTime        = "formato de horário inválido, esperado HH:MM"
	msgNameRequired       = "nome é obrigatório"
	msgSpecialtyRequired  = "especialidade é obrigatória"
	msgNoWorkDays         = "selecione pelo menos um dia de trabalho"
	msgInvalidHours       = "horário de início deve ser anterior ao de término"
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

// Handle POST /api/v1/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /professionals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	input, err := req.ToServiceInput()
	if err != nil {
		h.logger.Warn("POST /professionals - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.Create(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, rosterService.ErrNameRequired):
			h.logger.Warn("POST /professionals - Name required")
			handlers.RespondBadRequest(w, msgNameRequired)

		case errors.Is(err, rosterService.ErrSpecialtyRequired):
			h.logger.Warn("POST /professionals - Specialty required")
			handlers.RespondBadRequest(w, msgSpecialtyRequired)

		case errors.Is(err, rosterService.ErrNoWorkDays):
			h.logger.Warn("POST /professionals - No work days selected")
			handlers.RespondBadRequest(w, msgNoWorkDays)

		case errors.Is(err, rosterService.ErrInvalidHours):
			h.logger.Warn("POST /professionals - Invalid hours: start=%s, end=%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("POST /professionals - Failed to create professional: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /professionals - Professional created: id=%d, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
