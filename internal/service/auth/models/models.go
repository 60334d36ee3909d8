package models

import "github.com/avora-app/agenda-service/internal/domain"

// Credentials пара email/пароль для входа
type Credentials struct {
	Email    string
	Password string
}

// RegisterInput входные данные регистрации
// Новая учетная запись всегда получает роль user
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// UserInfo публичная часть учетной записи (без хэша пароля)
type UserInfo struct {
	Email string
	Name  string
	Role  domain.UserRole
}

// AuthResponse результат входа или регистрации
type AuthResponse struct {
	Token string
	User  UserInfo
}

// Claims полезная нагрузка проверенного токена
type Claims struct {
	Email string
	Name  string
	Role  domain.UserRole
}
