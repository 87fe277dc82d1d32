package api

import (
	"context"
	"net/http"

	"maestros/internal/auth"
)

type contextKey string

const usernameKey contextKey = "username"

// securityHeaders добавляет заголовки защиты к каждому ответу.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		next.ServeHTTP(w, r)
	})
}

// authMiddleware проверяет bearer-токен и добавляет имя пользователя в контекст.
// Отсутствующий токен — 401, недействительный или истекший — 403.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := auth.ExtractTokenFromRequest(r)
		if tokenString == "" {
			sendError(w, http.StatusUnauthorized, "Token requerido")
			return
		}

		claims, err := auth.ValidateToken(tokenString, s.secret)
		if err != nil {
			sendError(w, http.StatusForbidden, "Token inválido")
			return
		}

		ctx := context.WithValue(r.Context(), usernameKey, claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUsernameFromContext извлекает имя пользователя из контекста запроса.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey).(string)
	return username, ok
}
