package service

import (
	"fmt"
	"time"

	"github.com/bmsull560/refeed/internal/models"

	"github.com/google/uuid"
)

// validateListQuery проверяет обязательные параметры режима чтения
// до любых обращений к хранилищу.
//
// Ошибки:
//   - ErrUnsupportedView — неизвестный режим;
//   - ErrInvalidArgument — неизвестная сортировка, отсутствующий feed_id
//     для one/discover, отсутствующая папка для multiple.
func validateListQuery(q models.ListItemsQuery) error {
	if !q.View.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedView, q.View)
	}
	if !q.Sort.Valid() {
		return fmt.Errorf("%w: unknown sort %q", ErrInvalidArgument, q.Sort)
	}

	switch q.View {
	case models.ViewOne, models.ViewDiscover:
		if q.FeedID == uuid.Nil {
			return fmt.Errorf("%w: feed_id is required for view %q", ErrInvalidArgument, q.View)
		}
	case models.ViewMultiple:
		if q.FolderID == uuid.Nil {
			return fmt.Errorf("%w: folder is required for view %q", ErrInvalidArgument, q.View)
		}
	}

	return nil
}

// buildViewFilter строит явный предикат выборки из (режим чтения, параметры).
// Чистая функция: не ходит в хранилище, тестируется без него.
//
// Контракт по режимам:
//   - all: фид подписан пользователем; весь набор материалов фида внутри окна
//     (страж свежести уровня фида); материал не прочитан;
//   - one: как all, но фид зафиксирован;
//   - multiple: как all, но фиды ограничены набором, развёрнутым из папки;
//   - discover: фид зафиксирован, страж свежести, не прочитан — без требования
//     подписки;
//   - bookmarks: сохранено на потом либо привязано хотя бы к одной папке
//     закладок этого пользователя;
//   - recentlyread: прочитано не раньше границы окна; выборка ВСЕГДА id DESC
//     независимо от запрошенной сортировки — порядок отображения производит
//     стабилизация после проекции;
//   - newsletters: только флаг «из рассылки», без скоупа по подписке
//     и состоянию прочтения.
func buildViewFilter(userID uuid.UUID, view models.ViewType, sort models.SortOrder, feedIDs []uuid.UUID, windowStart time.Time) models.ItemFilter {
	filter := models.ItemFilter{
		UserID:      userID,
		View:        view,
		WindowStart: windowStart,
		Descending:  sort.Descending(),
	}

	switch view {
	case models.ViewAll:
		filter.SubscribedOnly = true
		filter.FreshFeedOnly = true
		filter.UnreadOnly = true
	case models.ViewOne:
		filter.FeedIDs = feedIDs
		filter.SubscribedOnly = true
		filter.FreshFeedOnly = true
		filter.UnreadOnly = true
	case models.ViewMultiple:
		filter.FeedIDs = feedIDs
		filter.SubscribedOnly = true
		filter.FreshFeedOnly = true
		filter.UnreadOnly = true
	case models.ViewDiscover:
		filter.FeedIDs = feedIDs
		filter.FreshFeedOnly = true
		filter.UnreadOnly = true
	case models.ViewBookmarks:
		filter.SavedOrBookmarked = true
	case models.ViewRecentlyRead:
		since := windowStart
		filter.ReadSince = &since
		// Порядок выборки фиксирован, курсор живёт в нём же.
		filter.Descending = true
	case models.ViewNewsletters:
		filter.NewslettersOnly = true
	}

	return filter
}
