package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-VenueService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueService/internal/domain"
)

// UserIDHeader заголовок с ID пользователя, выставляемый API-шлюзом
const UserIDHeader = "X-User-ID"

// UserRoleHeader заголовок с ролью пользователя; пустой означает staff
const UserRoleHeader = "X-User-Role"

const (
	msgMissingUserID = "отсутствует или некорректен заголовок X-User-ID"
	msgInvalidRole   = "некорректен заголовок X-User-Role"
)

type userIDKey struct{}

type userRoleKey struct{}

// Auth требует положительный X-User-ID и известную роль, кладет их в контекст.
// Проверка подлинности выполняется шлюзом до сервиса.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(UserIDHeader), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}
		role, err := domain.ParseRole(r.Header.Get(UserRoleHeader))
		if err != nil {
			handlers.RespondUnauthorized(w, msgInvalidRole)
			return
		}
		ctx := WithUserRole(WithUserID(r.Context(), userID), role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserID возвращает ID пользователя, сохраненный Auth
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}

func WithUserRole(ctx context.Context, role domain.Role) context.Context {
	return context.WithValue(ctx, userRoleKey{}, role)
}

// GetUserRole возвращает роль пользователя, сохраненную Auth
func GetUserRole(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(userRoleKey{}).(domain.Role)
	return role, ok
}
