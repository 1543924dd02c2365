// handlers содержит REST-эндпоинты reader-service.
//
// Принципы:
//   - Контекст запроса прокидывается в сервис без потерь;
//   - параметры запроса валидируются до вызова сервиса: локальные ошибки
//     парсинга отдаются как invalid_argument без обращения к сервису;
//   - ошибки сервиса транслируются в HTTP единым apierrors.WriteError.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bmsull560/refeed/internal/models"
	"github.com/bmsull560/refeed/internal/service"
)

// Handlers агрегирует зависимости эндпоинтов.
type Handlers struct {
	Service *service.Service
}

func New(svc *service.Service) *Handlers {
	return &Handlers{Service: svc}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// itemJSON — представление материала в ответах.
type itemJSON struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	FeedTitle       string     `json:"feed_title"`
	FeedLogoURL     string     `json:"feed_logo_url,omitempty"`
	Read            bool       `json:"read"`
	Saved           bool       `json:"saved"`
	Note            string     `json:"note,omitempty"`
	BookmarkFolders []string   `json:"bookmark_folders,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ReadAt          *time.Time `json:"read_at,omitempty"`
}

func toItemJSON(item models.Item) itemJSON {
	return itemJSON{
		ID:              item.ID,
		Title:           item.Title,
		Content:         item.Content,
		FeedTitle:       item.FeedTitle,
		FeedLogoURL:     item.FeedLogoURL,
		Read:            item.Read,
		Saved:           item.Saved,
		Note:            item.Note,
		BookmarkFolders: item.BookmarkFolders,
		CreatedAt:       item.CreatedAt,
		ReadAt:          item.ReadAt,
	}
}

func toItemsJSON(items []models.Item) []itemJSON {
	out := make([]itemJSON, 0, len(items))
	for _, item := range items {
		out = append(out, toItemJSON(item))
	}
	return out
}
