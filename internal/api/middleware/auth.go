package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/NachoLedesma33/ReservationSystem/internal/api/handlers"
	"github.com/NachoLedesma33/ReservationSystem/internal/domain"
	"github.com/NachoLedesma33/ReservationSystem/pkg/tokens"
)

type contextKey string

const principalKey contextKey = "principal"

const (
	msgMissingToken = "требуется заголовок Authorization: Bearer <token>"
	msgInvalidToken = "невалидный или просроченный токен"
)

// Auth middleware аутентификации по Bearer JWT
// Кладёт domain.Principal в контекст запроса
func Auth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := tokens.ParseToken(raw, jwtSecret)
			if err != nil {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			if !domain.ValidRole(claims.Role) {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			principal := domain.Principal{
				UserID: claims.UserID,
				Role:   domain.Role(claims.Role),
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// WithPrincipal кладёт Principal в контекст
func WithPrincipal(ctx context.Context, principal domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// GetPrincipal извлекает Principal из контекста запроса
// Возвращает false, если запрос не прошёл через Auth middleware
func GetPrincipal(ctx context.Context) (domain.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(domain.Principal)
	return principal, ok
}
