package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/avora-app/agenda-service/internal/domain"
	"github.com/avora-app/agenda-service/internal/service/auth/models"
)

// minPasswordLength минимальная длина пароля при регистрации
const minPasswordLength = 6

// Service аутентификация: вход, регистрация и проверка токенов
// Токены - JWT HS256 с email/name/role в полезной нагрузке
type Service struct {
	usersRepo    UsersRepository
	timeProvider TimeProvider
	logger       Logger
	secret       []byte
	tokenTTL     time.Duration
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(usersRepo UsersRepository, logger Logger, secret string, tokenTTL time.Duration) *Service {
	return &Service{
		usersRepo:    usersRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		secret:       []byte(secret),
		tokenTTL:     tokenTTL,
	}
}

// Login проверяет пару email/пароль и выпускает токен
func (s *Service) Login(ctx context.Context, creds *models.Credentials) (*models.AuthResponse, error) {
	email := normalizeEmail(creds.Email)
	s.logger.Info("Login: email=%s", email)

	users, err := s.usersRepo.Load(ctx)
	if err != nil {
		s.logger.Error("Login: failed to load users: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	user := domain.FindUser(users, email)
	if user == nil {
		s.logger.Warn("Login: unknown email %s", email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		s.logger.Warn("Login: wrong password for %s", email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		s.logger.Error("Login: failed to issue token: %v", err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: %s authenticated, role=%s", email, user.Role)
	return &models.AuthResponse{
		Token: token,
		User:  models.UserInfo{Email: user.Email, Name: user.Name, Role: user.Role},
	}, nil
}

// Register создает новую учетную запись с ролью user и сразу выпускает токен
func (s *Service) Register(ctx context.Context, input *models.RegisterInput) (*models.AuthResponse, error) {
	email := normalizeEmail(input.Email)
	s.logger.Info("Register: email=%s", email)

	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(input.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	users, err := s.usersRepo.Load(ctx)
	if err != nil {
		s.logger.Error("Register: failed to load users: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	if domain.FindUser(users, email) != nil {
		s.logger.Warn("Register: email %s already taken", email)
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := domain.User{
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		Role:         domain.RoleUser,
		PasswordHash: string(hash),
	}

	updated := append(append([]domain.User(nil), users...), user)
	if err := s.usersRepo.Save(ctx, updated); err != nil {
		s.logger.Error("Register: failed to save users: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	token, err := s.issueToken(&user)
	if err != nil {
		s.logger.Error("Register: failed to issue token: %v", err)
		return nil, fmt.Errorf("%w: Register - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Register: %s created", email)
	return &models.AuthResponse{
		Token: token,
		User:  models.UserInfo{Email: user.Email, Name: user.Name, Role: user.Role},
	}, nil
}

// VerifyToken проверяет подпись и срок действия токена
func (s *Service) VerifyToken(tokenString string) (*models.Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	email, _ := claims["sub"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)
	if email == "" || role == "" {
		return nil, errors.Join(ErrInvalidToken, errors.New("missing claims"))
	}

	return &models.Claims{
		Email: email,
		Name:  name,
		Role:  domain.UserRole(role),
	}, nil
}

// issueToken выпускает подписанный JWT для учетной записи
func (s *Service) issueToken(user *domain.User) (string, error) {
	now := s.timeProvider.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.Email,
		"name": user.Name,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	})
	return token.SignedString(s.secret)
}

// normalizeEmail приводит email к каноничному виду для сравнения
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
