package middleware

import (
	"context"
	"net/http"

	apierrors "github.com/bmsull560/refeed/internal/errors"

	"github.com/google/uuid"
)

type ctxKeyUserID struct{}

// UserID извлекает пользователя запроса из заголовка X-User-Id.
// Аутентификация/резолв сессии — забота вышестоящего шлюза; сюда
// заголовок приходит уже проверенным. Запрос без валидного UUID
// отклоняется единым ответом 401 до сервисного слоя.
func UserID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("X-User-Id")
			id, err := uuid.Parse(raw)
			if raw == "" || err != nil || id == uuid.Nil {
				apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUserID{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFrom достаёт пользователя из контекста; ok=false, если мидлвар не отработал.
func UserFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ctxKeyUserID{}).(uuid.UUID)
	return id, ok
}
