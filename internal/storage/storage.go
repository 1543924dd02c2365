// storage определяет контракты доступа к БД для reader-service.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/bmsull560/refeed/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCursor — битый/чужой cursor (курсор пагинации).
	ErrInvalidCursor = errors.New("invalid cursor")
)

// ItemsStorage описывает операции чтения материалов и связанных сущностей.
type ItemsStorage interface {
	// ListItems возвращает страницу соединённых записей по явному предикату
	// с керсет-пагинацией по id. Направление задаёт filter.Descending;
	// при битом opts.Cursor возвращается ErrInvalidCursor.
	// NextCursor заполняется, только если страница выбрана ровно до лимита.
	ListItems(ctx context.Context, filter models.ItemFilter, opts models.ListOptions) (*models.RecordPage, error)
	// SearchItems выполняет регистронезависимый подстрочный поиск по заголовку
	// (и по телу при withContent) в пределах фидов, подписанных пользователем.
	// Пустой запрос соответствует всему.
	SearchItems(ctx context.Context, userID uuid.UUID, query string, withContent bool, limit int32) ([]models.ItemRecord, error)
	// ReadFingerprints возвращает подмножество отпечатков из candidates,
	// по которым у пользователя уже есть прочитанный материал.
	ReadFingerprints(ctx context.Context, userID uuid.UUID, candidates []string) (map[string]struct{}, error)
	// PaginationStarts возвращает границы pagination_start подписок
	// пользователя на перечисленные фиды. Фиды без подписки в карту не входят.
	PaginationStarts(ctx context.Context, userID uuid.UUID, feedIDs []uuid.UUID) (map[uuid.UUID]time.Time, error)
	// FolderFeedIDs разворачивает пользовательскую папку в список id фидов.
	// Если папка не существует или принадлежит другому пользователю — ErrNotFound.
	FolderFeedIDs(ctx context.Context, folderID, userID uuid.UUID) ([]uuid.UUID, error)
}

// Storage задаёт контракт доступа к хранилищу для reader-сервиса.
type Storage interface {
	ItemsStorage
	Close()
}
