package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/avora-app/agenda-service/internal/api/handlers"
	"github.com/avora-app/agenda-service/internal/domain"
	"github.com/avora-app/agenda-service/internal/service/auth/models"
)

const (
	msgMissingToken = "token de autenticação ausente"
	msgInvalidToken = "token de autenticação inválido ou expirado"
	msgAdminOnly    = "acesso restrito ao administrador"
)

type contextKey string

// claimsContextKey ключ контекста с полезной нагрузкой токена
const claimsContextKey contextKey = "authClaims"

// TokenVerifier интерфейс проверки токена
type TokenVerifier interface {
	VerifyToken(tokenString string) (*models.Claims, error)
}

// Auth проверяет Bearer токен и кладет полезную нагрузку в контекст запроса
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				handlers.RespondError(w, http.StatusUnauthorized, msgMissingToken)
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				handlers.RespondError(w, http.StatusUnauthorized, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin пропускает только администраторов; ставится после Auth
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil || claims.Role != domain.RoleAdmin {
			handlers.RespondError(w, http.StatusForbidden, msgAdminOnly)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ClaimsFromContext возвращает полезную нагрузку токена из контекста
// или nil, если запрос не прошел через Auth
func ClaimsFromContext(ctx context.Context) *models.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*models.Claims)
	return claims
}
