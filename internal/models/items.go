// models содержит доменные сущности reader-сервиса.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ViewType — режим чтения, определяющий предикат выборки и порядок по умолчанию.
type ViewType string

const (
	// ViewAll — все непрочитанные материалы подписанных фидов.
	ViewAll ViewType = "all"
	// ViewOne — непрочитанные материалы одного фида.
	ViewOne ViewType = "one"
	// ViewMultiple — непрочитанные материалы фидов из пользовательской папки.
	ViewMultiple ViewType = "multiple"
	// ViewRecentlyRead — прочитанное за последние 30 дней.
	ViewRecentlyRead ViewType = "recentlyread"
	// ViewBookmarks — сохранённое на потом и/или разложенное по папкам закладок.
	ViewBookmarks ViewType = "bookmarks"
	// ViewDiscover — предпросмотр одного фида без требования подписки.
	ViewDiscover ViewType = "discover"
	// ViewNewsletters — материалы-рассылки. Намеренно не скоупится
	// ни по подписке, ни по состоянию прочтения (задокументированное отклонение).
	ViewNewsletters ViewType = "newsletters"
)

// Valid сообщает, известен ли режим чтения.
func (v ViewType) Valid() bool {
	switch v {
	case ViewAll, ViewOne, ViewMultiple, ViewRecentlyRead, ViewBookmarks, ViewDiscover, ViewNewsletters:
		return true
	}

	return false
}

// SortOrder — запрошенный порядок отображения.
//
// Readability*/ContentLength* принимаются схемой параметров, но порядка выборки
// не определяют: такие запросы выбираются в стабильном порядке по умолчанию
// (id DESC). Керсет-курсору нужен тотальный порядок, поэтому «неопределённая»
// сортировка обязана разрешаться в конкретный.
type SortOrder string

const (
	SortLatest            SortOrder = "Latest"
	SortOldest            SortOrder = "Oldest"
	SortReadabilityAsc    SortOrder = "ReadabilityAsc"
	SortReadabilityDesc   SortOrder = "ReadabilityDesc"
	SortContentLengthAsc  SortOrder = "ContentLengthAsc"
	SortContentLengthDesc SortOrder = "ContentLengthDesc"
)

// Valid сообщает, известен ли порядок сортировки.
func (s SortOrder) Valid() bool {
	switch s {
	case SortLatest, SortOldest,
		SortReadabilityAsc, SortReadabilityDesc,
		SortContentLengthAsc, SortContentLengthDesc:
		return true
	}

	return false
}

// Descending возвращает направление выборки по id для данной сортировки.
// Только SortOldest даёт возрастающий порядок.
func (s SortOrder) Descending() bool {
	return s != SortOldest
}

// ItemFilter — явное представление предиката выборки, построенное из
// (режим чтения, параметры). Валидируется и тестируется без живого хранилища;
// в SQL транслируется слоем storage/postgres.
type ItemFilter struct {
	// UserID — пользователь, от имени которого выполняется запрос.
	UserID uuid.UUID
	// View — исходный режим чтения (для диагностики).
	View ViewType
	// FeedIDs — ограничение по фидам; пустой срез — без ограничения.
	FeedIDs []uuid.UUID
	// SubscribedOnly — фид материала должен быть подписан пользователем.
	SubscribedOnly bool
	// FreshFeedOnly — «страж свежести»: фид допускается, только если весь его
	// набор материалов целиком внутри окна WindowStart (правило уровня фида).
	FreshFeedOnly bool
	// UnreadOnly — материал не отмечен прочитанным этим пользователем.
	UnreadOnly bool
	// SavedOrBookmarked — материал сохранён на потом или привязан хотя бы
	// к одной папке закладок этого пользователя.
	SavedOrBookmarked bool
	// ReadSince — только прочитанное не раньше этой границы (recentlyread).
	ReadSince *time.Time
	// NewslettersOnly — только материалы с флагом «из рассылки».
	NewslettersOnly bool
	// WindowStart — граница 30-дневного окна для FreshFeedOnly/ReadSince.
	WindowStart time.Time
	// Descending — направление выборки по id.
	Descending bool
}

// ListOptions — параметры постраничной выборки.
//
// Особенности:
//   - при Limit == 0 применяется серверный default (config.LimitsConfig.Default);
//   - Cursor == "" -> первая страница.
type ListOptions struct {
	Limit  int32
	Cursor string
}

// ListItemsQuery — входные параметры операции получения страницы материалов.
type ListItemsQuery struct {
	Amount   int32
	Sort     SortOrder
	View     ViewType
	FolderID uuid.UUID
	FeedID   uuid.UUID
	Cursor   string
}

// FeedRef — проекция фида, присоединяемая к материалу.
type FeedRef struct {
	Title   string
	LogoURL string
}

// ItemState — состояние материала у конкретного пользователя.
//
// В хранилище это не более одной строки на пару (user, item); в домене
// моделируется как опциональный синглтон (указатель), а не коллекция.
type ItemState struct {
	Read   bool
	ReadAt *time.Time
	Saved  bool
	Note   string
}

// ItemRecord — соединённая запись выборки: материал, проекция фида,
// опциональное состояние пользователя и имена папок закладок.
type ItemRecord struct {
	ID              int64
	FeedID          uuid.UUID
	Title           string
	Content         string
	Fingerprint     string
	FromNewsletter  bool
	CreatedAt       time.Time
	Feed            FeedRef
	State           *ItemState
	BookmarkFolders []string
}

// Item — плоское представление материала для выдачи.
// Отсутствие ItemState у записи означает значения по умолчанию
// («не прочитано, не сохранено»).
type Item struct {
	ID              int64
	Title           string
	Content         string
	FeedTitle       string
	FeedLogoURL     string
	Read            bool
	Saved           bool
	Note            string
	BookmarkFolders []string
	CreatedAt       time.Time
	ReadAt          *time.Time
	// Fingerprint — ключ группы дубликатов; наружу не отдаётся.
	Fingerprint string
}

// RecordPage — страница соединённых записей со ссылкой на продолжение.
// NextCursor вычисляется по последней ВЫБРАННОЙ записи до любых
// посткоррекций (дедупликация, фильтр окна подписки), иначе пагинация
// начала бы пропускать материалы.
type RecordPage struct {
	Records    []ItemRecord
	NextCursor string
}

// Page — страница плоских материалов со ссылкой на продолжение.
type Page struct {
	Items      []Item
	NextCursor string
}

// Plan — тариф пользователя. Проверка тарифа — внешняя забота;
// здесь он виден только как значение от коллаборатора-заглушки.
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// ContentSearch сообщает, разрешён ли тарифу поиск по телу материала.
func (p Plan) ContentSearch() bool {
	return p == PlanPro
}
