package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/RBP-ReservationService/internal/api/handlers"
)

type ctxKey int

// userIDKey ключ для ID пользователя в context
const userIDKey ctxKey = iota

// Auth проверяет наличие заголовка X-User-ID (проставляется API gateway
// после аутентификации) и кладёт ID пользователя в context запроса.
// Используется для административных маршрутов.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get("X-User-ID")
		if rawID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "unauthorized", "требуется заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "unauthorized", "некорректный X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
