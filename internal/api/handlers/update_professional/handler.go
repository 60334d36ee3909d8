package update_professional

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
	msgInvalidTime           = "formato de horário inválido, esperado HH:MM"
	msgNameRequired          = "nome é obrigatório"
	msgSpecialtyRequired     = "especialidade é obrigatória"
	msgNoWorkDays            = "selecione pelo menos um dia de trabalho"
	msgInvalidHours          = "horário de início deve ser anterior ao de término"
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

// Handle PUT /api/v1/professionals/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /professionals/{id} - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	var req ProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professionals/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	input, err := req.ToServiceInput()
	if err != nil {
		h.logger.Warn("PUT /professionals/{id} - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, rosterService.ErrProfessionalNotFound):
			h.logger.Warn("PUT /professionals/{id} - Professional not found: id=%d", id)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, rosterService.ErrNameRequired):
			h.logger.Warn("PUT /professionals/{id} - Name required: id=%d", id)
			handlers.RespondBadRequest(w, msgNameRequired)

		case errors.Is(err, rosterService.ErrSpecialtyRequired):
			h.logger.Warn("PUT /professionals/{id} - Specialty required: id=%d", id)
			handlers.RespondBadRequest(w, msgSpecialtyRequired)

		case errors.Is(err, rosterService.ErrNoWorkDays):
			h.logger.Warn("PUT /professionals/{id} - No work days selected: id=%d", id)
			handlers.RespondBadRequest(w, msgNoWorkDays)

		case errors.Is(err, rosterService.ErrInvalidHours):
			h.logger.Warn("PUT /professionals/{id} - Invalid hours: id=%d, start=%s, end=%s",
				id, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /professionals/{id} - Failed to update professional: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /professionals/{id} - Professional updated: id=%d, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
