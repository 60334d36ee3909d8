package login

import (
	"github.com/avora-app/agenda-service/internal/service/auth/models"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse публичная часть учетной записи
type UserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AuthResponse) *LoginResponse {
	return &LoginResponse{
		Token: resp.Token,
		User: UserResponse{
			Email: resp.User.Email,
			Name:  resp.User.Name,
			Role:  string(resp.User.Role),
		},
	}
}
