// log переносит request-scoped логгер через context.Context.
// Мидлвар Logging кладёт сюда логгер с request_id, а сервисный слой
// (выдача, поиск, дедупликация) достаёт его через From — записи одного
// запроса остаются связанными без явной передачи логгера по слоям.
package log

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Into кладёт логгер в контекст запроса.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From достаёт логгер из контекста. Вне HTTP-запроса (старт сервиса,
// тесты) логгера в контексте нет — возвращается slog.Default().
func From(ctx context.Context) *slog.Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}

	return slog.Default()
}
