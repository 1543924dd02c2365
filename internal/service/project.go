package service

import (
	"github.com/bmsull560/refeed/internal/models"
)

// projectRecord доводит соединённую запись до плоского представления.
// Состояние пользователя — опциональный синглтон: его отсутствие означает
// «не прочитано, не сохранено». Пустой отпечаток добирается из заголовка,
// чтобы подавлению дубликатов всегда было по чему группировать.
func projectRecord(rec models.ItemRecord) models.Item {
	item := models.Item{
		ID:              rec.ID,
		Title:           rec.Title,
		Content:         rec.Content,
		FeedTitle:       rec.Feed.Title,
		FeedLogoURL:     rec.Feed.LogoURL,
		BookmarkFolders: rec.BookmarkFolders,
		CreatedAt:       rec.CreatedAt,
		Fingerprint:     rec.Fingerprint,
	}

	if rec.State != nil {
		item.Read = rec.State.Read
		item.Saved = rec.State.Saved
		item.Note = rec.State.Note
		item.ReadAt = rec.State.ReadAt
	}

	if item.Fingerprint == "" {
		item.Fingerprint = fingerprintOf(item.Title)
	}

	return item
}

// projectRecords проецирует страницу записей в плоские материалы,
// сохраняя порядок выборки.
func projectRecords(records []models.ItemRecord) []models.Item {
	items := make([]models.Item, 0, len(records))
	for _, rec := range records {
		items = append(items, projectRecord(rec))
	}

	return items
}
