package service

import (
	"time"

	"github.com/bmsull560/refeed/internal/models"

	"github.com/google/uuid"
)

// filterSubscriptionWindow отбрасывает материалы старше границы
// pagination_start подписки пользователя на их фид: защита от затопления
// непрочитанного всей историей фида в момент подписки.
//
// starts — карта границ по фидам (storage.PaginationStarts). Материал фида
// без записи в карте сохраняется: в вью с предикатом подписки такой записи
// быть не должно, а судить без границы не по чему.
func filterSubscriptionWindow(records []models.ItemRecord, starts map[uuid.UUID]time.Time) []models.ItemRecord {
	out := make([]models.ItemRecord, 0, len(records))
	for _, rec := range records {
		start, ok := starts[rec.FeedID]
		if ok && rec.CreatedAt.Before(start) {
			continue
		}
		out = append(out, rec)
	}

	return out
}

// recordFeedIDs собирает уникальные id фидов страницы для выборки границ.
func recordFeedIDs(records []models.ItemRecord) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(records))
	ids := make([]uuid.UUID, 0, len(records))
	for _, rec := range records {
		if _, ok := seen[rec.FeedID]; ok {
			continue
		}
		seen[rec.FeedID] = struct{}{}
		ids = append(ids, rec.FeedID)
	}

	return ids
}
