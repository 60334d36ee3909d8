package create_appointment

import (
	"errors"
	"net/http"

	"github.com/avora-app/agenda-service/internal/api/handlers"
	createAppointment "github.com/avora-app/agenda-service/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "corpo da requisição inválido"
	msgInvalidTime          = "formato de horário inválido, esperado HH:MM"
	msgClientNameRequired   = "nome do cliente é obrigatório"
	msgInvalidDate          = "data inválida"
	msgInvalidTimeSlot      = "horário fora da grade de atendimento"
	msgProfessionalNotFound = "profissional não encontrado"
	msgServiceNotFound      = "serviço não encontrado"
	msgSlotTaken            = "este horário já está ocupado para o profissional selecionado"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid time %q: %v", req.Time, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: time=%s, professional_id=%d",
				req.Time, req.ProfessionalID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrClientNameRequired):
			h.logger.Warn("POST /appointments - Client name required")
			handlers.RespondBadRequest(w, msgClientNameRequired)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: %d-%d-%d", req.Year, req.Month, req.Day)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Time %s is not a canonical slot", req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrProfessionalNotFound):
			h.logger.Warn("POST /appointments - Professional not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: professional_id=%d, error=%v",
				req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created: id=%d, date_key=%s, time=%s, professional_id=%d",
		result.ID, result.DateKey, result.Time, result.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
