package login

import (
	"errors"
	"net/http"

	"github.com/avora-app/agenda-service/internal/api/handlers"
	authService "github.com/avora-app/agenda-service/internal/service/auth"
	"github.com/avora-app/agenda-service/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidCredentials = "email ou senha incorretos"
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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &models.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: email=%s", req.Email)
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidCredentials)

		default:
			h.logger.Error("POST /auth/login - Failed to authenticate: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Authenticated: email=%s, role=%s", result.User.Email, result.User.Role)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
