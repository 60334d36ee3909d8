package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avora-app/agenda-service/internal/api/handlers"
	cancelAppointment "github.com/avora-app/agenda-service/internal/usecase/cancel_appointment"
)

const (
	msgInvalidAppointmentID = "ID do agendamento inválido"
	msgInvalidDateKey       = "chave de data inválida"
	msgAppointmentNotFound  = "agendamento não encontrado"
)

type Handler struct {
	useCase CancelAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CancelAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/appointments/{dateKey}/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	dateKey := vars["dateKey"]

	idStr := vars["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /appointments/{dateKey}/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelAppointment.Request{
		DateKey:       dateKey,
		AppointmentID: id,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelAppointment.ErrInvalidDateKey):
			h.logger.Warn("DELETE /appointments/{dateKey}/{id} - Invalid date key: %q", dateKey)
			handlers.RespondBadRequest(w, msgInvalidDateKey)

		case errors.Is(err, cancelAppointment.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{dateKey}/{id} - Appointment not found: date_key=%s, id=%d",
				dateKey, id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("DELETE /appointments/{dateKey}/{id} - Failed to cancel: date_key=%s, id=%d, error=%v",
				dateKey, id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{dateKey}/{id} - Appointment cancelled: date_key=%s, id=%d, remaining=%d",
		result.DateKey, result.Removed, result.Remaining)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
