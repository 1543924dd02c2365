package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	apierrors "github.com/bmsull560/refeed/internal/errors"
	"github.com/bmsull560/refeed/internal/models"
	"github.com/bmsull560/refeed/internal/service"
	"github.com/bmsull560/refeed/internal/transport/http/middleware"

	"github.com/google/uuid"
)

// listItemsResponse — страница материалов со ссылкой на продолжение.
// next_cursor отсутствует, когда выборка исчерпана.
type listItemsResponse struct {
	Items      []itemJSON `json:"items"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

// ListItems — GET /items?amount=&sort=&type=&folder=&feed_id=&cursor=.
// type — режим чтения (обязателен); folder обязателен при type=multiple,
// feed_id — при type∈{one,discover}; дальнейшая валидация — в сервисе.
func (h *Handlers) ListItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
		return
	}

	var q models.ListItemsQuery

	if v := r.URL.Query().Get("amount"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			apierrors.WriteError(w, r, invalidArgument("amount"))
			return
		}

		q.Amount = int32(n)
	}

	q.View = models.ViewType(r.URL.Query().Get("type"))
	q.Sort = models.SortOrder(r.URL.Query().Get("sort"))
	q.Cursor = r.URL.Query().Get("cursor")

	if v := r.URL.Query().Get("folder"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			apierrors.WriteError(w, r, invalidArgument("folder"))
			return
		}

		q.FolderID = id
	}

	if v := r.URL.Query().Get("feed_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			apierrors.WriteError(w, r, invalidArgument("feed_id"))
			return
		}

		q.FeedID = id
	}

	page, err := h.Service.UnreadItems(r.Context(), userID, q)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listItemsResponse{
		Items:      toItemsJSON(page.Items),
		NextCursor: page.NextCursor,
	})
}

// invalidArgument — вспомогалка: локальная ошибка парсинга -> invalid_argument.
func invalidArgument(param string) error {
	return fmt.Errorf("%w: bad %s", service.ErrInvalidArgument, param)
}
