package postgres

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bmsull560/refeed/internal/models"
	"github.com/bmsull560/refeed/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// recordColumns — единый список колонок соединённой записи,
// используемый в ListItems/SearchItems, чтобы гарантировать одинаковый
// порядок сканирования. Пользователь запроса всегда передаётся как $1 —
// на нём завязаны LEFT JOIN состояния и подзапрос имён папок.
const recordColumns = `
	i.id, i.feed_id, i.title, i.content, i.fingerprint, i.from_newsletter, i.created_at,
	f.title, f.logo_url,
	s.read, s.read_at, s.saved, s.note,
	COALESCE((
		SELECT array_agg(bf.name ORDER BY bf.name)
		FROM item_state_folders isf
		JOIN bookmark_folders bf ON bf.id = isf.folder_id
		WHERE isf.user_id = $1 AND isf.item_id = i.id
	), '{}'::text[])
`

const recordFrom = `
	FROM items i
	JOIN feeds f ON f.id = i.feed_id
	LEFT JOIN item_states s ON s.item_id = i.id AND s.user_id = $1
`

// scanRecords вычитывает соединённые записи из результата запроса.
// Состояние пользователя — опциональный синглтон: при отсутствии строки
// item_states все четыре поля приходят NULL и State остаётся nil.
func scanRecords(rows pgx.Rows) ([]models.ItemRecord, error) {
	var records []models.ItemRecord

	for rows.Next() {
		var rec models.ItemRecord
		var read, saved *bool
		var readAt *time.Time
		var note *string

		if err := rows.Scan(
			&rec.ID,
			&rec.FeedID,
			&rec.Title,
			&rec.Content,
			&rec.Fingerprint,
			&rec.FromNewsletter,
			&rec.CreatedAt,
			&rec.Feed.Title,
			&rec.Feed.LogoURL,
			&read,
			&readAt,
			&saved,
			&note,
			&rec.BookmarkFolders,
		); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		// Нормализация в UTC.
		rec.CreatedAt = rec.CreatedAt.UTC()

		if read != nil {
			state := models.ItemState{
				Read:  *read,
				Saved: saved != nil && *saved,
			}
			if note != nil {
				state.Note = *note
			}
			if readAt != nil {
				t := readAt.UTC()
				state.ReadAt = &t
			}
			rec.State = &state
		}

		records = append(records, rec)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("rows: %w", rows.Err())
	}

	return records, nil
}

// ListItems возвращает страницу соединённых записей по явному предикату
// с керсет-пагинацией по id.
//
// Контракт керсета: при пустом курсоре выбираются первые limit записей
// в заданном порядке; при непустом — записи строго после позиции курсора
// в том же порядке (сама запись-якорь пропускается предикатом сравнения).
// Удаление записи-якоря на корректность не влияет: сравнение по id не
// требует существования строки. NextCursor заполняется, только если
// страница выбрана ровно до лимита, иначе выборка исчерпана.
// cursor — непрозрачная строка (base64url); при некорректном токене
// возвращается storage.ErrInvalidCursor.
func (s *Storage) ListItems(ctx context.Context, filter models.ItemFilter, opts models.ListOptions) (*models.RecordPage, error) {
	const op = "storage/postgres/ListItems"

	limit := opts.Limit
	if limit <= 0 {
		// Защита от нуля/отрицательного значения.
		limit = 1
	}

	args := []any{filter.UserID}
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	var conds []string

	if len(filter.FeedIDs) > 0 {
		conds = append(conds, "i.feed_id = ANY("+arg(filter.FeedIDs)+")")
	}
	if filter.SubscribedOnly {
		conds = append(conds, "EXISTS (SELECT 1 FROM subscriptions sub WHERE sub.user_id = $1 AND sub.feed_id = i.feed_id)")
	}
	if filter.FreshFeedOnly {
		// Страж свежести уровня фида: один материал старше окна
		// исключает весь фид целиком.
		conds = append(conds, "NOT EXISTS (SELECT 1 FROM items old WHERE old.feed_id = i.feed_id AND old.created_at < "+arg(filter.WindowStart.UTC())+")")
	}
	if filter.UnreadOnly {
		conds = append(conds, "COALESCE(s.read, FALSE) = FALSE")
	}
	if filter.SavedOrBookmarked {
		conds = append(conds, "(COALESCE(s.saved, FALSE) OR EXISTS (SELECT 1 FROM item_state_folders sf WHERE sf.user_id = $1 AND sf.item_id = i.id))")
	}
	if filter.ReadSince != nil {
		conds = append(conds, "s.read AND s.read_at >= "+arg(filter.ReadSince.UTC()))
	}
	if filter.NewslettersOnly {
		conds = append(conds, "i.from_newsletter")
	}

	cmp, dir := "<", "DESC"
	if !filter.Descending {
		cmp, dir = ">", "ASC"
	}

	if opts.Cursor != "" {
		lastID, err := decodeCursor(opts.Cursor)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}
		conds = append(conds, "i.id "+cmp+" "+arg(lastID))
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	q := "SELECT " + recordColumns + recordFrom + where +
		" ORDER BY i.id " + dir + " LIMIT " + arg(limit)

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	page := models.RecordPage{Records: records}

	// Курсор продолжения — по последней выбранной записи,
	// и только если страница заполнена до лимита.
	if l := len(records); l > 0 && int32(l) == limit {
		page.NextCursor = encodeCursor(records[l-1].ID)
	}

	return &page, nil
}

// SearchItems выполняет регистронезависимый подстрочный поиск по заголовку
// (и по телу при withContent) в пределах фидов, подписанных пользователем.
// Пустой запрос соответствует всему. Выборка в порядке id DESC, без курсора.
func (s *Storage) SearchItems(ctx context.Context, userID uuid.UUID, query string, withContent bool, limit int32) ([]models.ItemRecord, error) {
	const op = "storage/postgres/SearchItems"

	if limit <= 0 {
		limit = 1
	}

	args := []any{userID}
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	conds := []string{
		"EXISTS (SELECT 1 FROM subscriptions sub WHERE sub.user_id = $1 AND sub.feed_id = i.feed_id)",
	}

	if query != "" {
		pat := arg("%" + escapeLike(query) + "%")
		if withContent {
			conds = append(conds, "(i.title ILIKE "+pat+" OR i.content ILIKE "+pat+")")
		} else {
			conds = append(conds, "i.title ILIKE "+pat)
		}
	}

	q := "SELECT " + recordColumns + recordFrom +
		"WHERE " + strings.Join(conds, " AND ") +
		" ORDER BY i.id DESC LIMIT " + arg(limit)

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}

// ReadFingerprints возвращает подмножество отпечатков из candidates,
// по которым у пользователя уже есть прочитанный материал.
func (s *Storage) ReadFingerprints(ctx context.Context, userID uuid.UUID, candidates []string) (map[string]struct{}, error) {
	const op = "storage/postgres/ReadFingerprints"

	result := make(map[string]struct{}, len(candidates))
	if len(candidates) == 0 {
		return result, nil
	}

	rows, err := s.db.Query(ctx, `
	SELECT DISTINCT i.fingerprint
	FROM items i
	JOIN item_states s ON s.item_id = i.id AND s.user_id = $1 AND s.read
	WHERE i.fingerprint <> '' AND i.fingerprint = ANY($2)
	`, userID, candidates)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var fp string
		if err := rows.Scan(&fp); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		result[fp] = struct{}{}
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return result, nil
}

// PaginationStarts возвращает границы pagination_start подписок пользователя
// на перечисленные фиды. Фиды без подписки в карту не входят.
func (s *Storage) PaginationStarts(ctx context.Context, userID uuid.UUID, feedIDs []uuid.UUID) (map[uuid.UUID]time.Time, error) {
	const op = "storage/postgres/PaginationStarts"

	result := make(map[uuid.UUID]time.Time, len(feedIDs))
	if len(feedIDs) == 0 {
		return result, nil
	}

	rows, err := s.db.Query(ctx, `
	SELECT feed_id, pagination_start
	FROM subscriptions
	WHERE user_id = $1 AND feed_id = ANY($2)
	`, userID, feedIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var feedID uuid.UUID
		var start time.Time
		if err := rows.Scan(&feedID, &start); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		result[feedID] = start.UTC()
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return result, nil
}

// FolderFeedIDs разворачивает пользовательскую папку в список id фидов.
// Если папка не существует или принадлежит другому пользователю —
// storage.ErrNotFound. Пустая папка — корректный результат (пустой срез).
func (s *Storage) FolderFeedIDs(ctx context.Context, folderID, userID uuid.UUID) ([]uuid.UUID, error) {
	const op = "storage/postgres/FolderFeedIDs"

	var one int
	err := s.db.QueryRow(ctx, `
	SELECT 1 FROM folders WHERE id = $1 AND user_id = $2
	`, folderID, userID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, `
	SELECT feed_id FROM folder_feeds WHERE folder_id = $1
	`, folderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var feedIDs []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		feedIDs = append(feedIDs, id)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return feedIDs, nil
}

// encodeCursor кодирует id последней записи страницы в непрозрачный токен.
func encodeCursor(id int64) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatInt(id, 10)))
}

// decodeCursor декодирует токен обратно в id записи-якоря.
func decodeCursor(token string) (int64, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("non-positive id")
	}

	return id, nil
}

// escapeLike экранирует спецсимволы шаблона LIKE/ILIKE в пользовательском вводе.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
