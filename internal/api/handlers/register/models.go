package register

import (
	"github.com/avora-app/agenda-service/internal/service/auth/models"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse публичная часть учетной записи
type UserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// RegisterResponse HTTP response model
type RegisterResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AuthResponse) *RegisterResponse {
	return &RegisterResponse{
		Token: resp.Token,
		User: UserResponse{
			Email: resp.User.Email,
			Name:  resp.User.Name,
			Role:  string(resp.User.Role),
		},
	}
}
