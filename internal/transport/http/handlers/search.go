package handlers

import (
	"net/http"
	"strconv"

	apierrors "github.com/bmsull560/refeed/internal/errors"
	"github.com/bmsull560/refeed/internal/transport/http/middleware"
)

// searchResponse — результаты поиска (без курсора: выдача ограничена take).
type searchResponse struct {
	Items []itemJSON `json:"items"`
}

// SearchItems — GET /items/search?q=&take=.
// Тело результатов приведено к читаемому тексту; поиск по телу
// выполняется только для тарифов с таким правом.
func (h *Handlers) SearchItems(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, false)
}

// SearchItemsFormatted — GET /items/search/plain?q=&take=.
// Плоская выдача без преобразования тела, единообразная с постраничными вью.
func (h *Handlers) SearchItemsFormatted(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, true)
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request, formatted bool) {
	userID, ok := middleware.UserFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
		return
	}

	var take int32
	if v := r.URL.Query().Get("take"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			apierrors.WriteError(w, r, invalidArgument("take"))
			return
		}

		take = int32(n)
	}

	query := r.URL.Query().Get("q")

	var err error
	var items []itemJSON
	if formatted {
		res, serr := h.Service.SearchItemsFormatted(r.Context(), userID, query, take)
		items, err = toItemsJSON(res), serr
	} else {
		res, serr := h.Service.SearchItems(r.Context(), userID, query, take)
		items, err = toItemsJSON(res), serr
	}

	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{Items: items})
}
