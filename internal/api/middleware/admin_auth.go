package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/Eclipse-BookingService/internal/api/handlers"
)

// adminTokenHeader заголовок с админским токеном
const adminTokenHeader = "X-Admin-Token"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminAuth возвращает middleware, пропускающий только запросы с верным
// админским токеном. Пустой настроенный токен закрывает админку целиком.
func AdminAuth(token string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				logger.Warn("AdminAuth: admin token is not configured, rejecting %s %s", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, "admin API is disabled")
				return
			}

			got := r.Header.Get(adminTokenHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				logger.Warn("AdminAuth: invalid admin token for %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "invalid admin token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
