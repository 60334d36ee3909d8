package register

import (
	"errors"
	"net/http"

	"github.com/avora-app/agenda-service/internal/api/handlers"
	authService "github.com/avora-app/agenda-service/internal/service/auth"
	"github.com/avora-app/agenda-service/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgNameRequired       = "nome é obrigatório"
	msgEmailRequired      = "email é obrigatório"
	msgPasswordTooShort   = "a senha deve ter pelo menos 6 caracteres"
	msgEmailTaken         = "este email já está cadastrado"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &models.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrNameRequired):
			h.logger.Warn("POST /auth/register - Name required")
			handlers.RespondBadRequest(w, msgNameRequired)

		case errors.Is(err, authService.ErrEmailRequired):
			h.logger.Warn("POST /auth/register - Email required")
			handlers.RespondBadRequest(w, msgEmailRequired)

		case errors.Is(err, authService.ErrPasswordTooShort):
			h.logger.Warn("POST /auth/register - Password too short: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgPasswordTooShort)

		case errors.Is(err, authService.ErrEmailTaken):
			h.logger.Warn("POST /auth/register - Email taken: email=%s", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgEmailTaken)

		default:
			h.logger.Error("POST /auth/register - Failed to register: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - Registered: email=%s", result.User.Email)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
