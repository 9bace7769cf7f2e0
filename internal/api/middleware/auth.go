package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/itolstov/FS-BookingService/internal/api/handlers"
)

type contextKey string

// UserIDKey ключ контекста с ID пользователя из заголовка X-User-ID
const UserIDKey contextKey = "userID"

// Auth middleware аутентификации по заголовку X-User-ID.
// Заголовок проставляется API-шлюзом после проверки сессии;
// сам сервис сессиями не управляет.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, "заголовок X-User-ID обязателен")
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID пользователя из контекста запроса
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}
