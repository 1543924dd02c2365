package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bmsull560/refeed/internal/models"
	"github.com/bmsull560/refeed/internal/pkg/log"
	"github.com/bmsull560/refeed/internal/storage"

	"github.com/google/uuid"
)

// UnreadItems возвращает страницу материалов запрошенного режима чтения
// с курсором продолжения.
//
// Конвейер: валидация -> (разворачивание папки) -> сборка предиката ->
// постраничная выборка -> фильтр окна подписки (вью "all") -> проекция ->
// стабилизация порядка прочтения (recentlyread) -> подавление дубликатов
// (все вью, кроме newsletters). Запрос без курсора начинает новую сессию
// листания: межстраничное подавление не переносится между сессиями.
//
// Нормализация amount по конфигу: amount <= 0 -> default, amount > max -> max;
// при features.plan_limit бесплатный тариф дополнительно ограничен free_max.
//
// Ошибки:
//   - ErrUnsupportedView — неизвестный режим чтения;
//   - ErrInvalidArgument — отсутствующие параметры режима, неизвестная
//     сортировка, папка не найдена или чужая;
//   - ErrInvalidCursor — битый cursor (маппинг storage.ErrInvalidCursor);
//   - прочие ошибки стораджа — обёрнутые и прокинутые наверх.
//
// Известное ограничение: для recentlyread порядок выборки (по id) и порядок
// отображения (по времени прочтения) различаются; при конкурентных отметках
// прочтения между страницами возможны повторы или пропуски.
func (s *Service) UnreadItems(ctx context.Context, userID uuid.UUID, q models.ListItemsQuery) (*models.Page, error) {
	const op = "service.items.UnreadItems"

	lg := log.From(ctx)
	lg.Info("unread_items_request",
		slog.String("op", op),
		slog.String("view", string(q.View)),
		slog.String("sort", string(q.Sort)),
		slog.Int("amount", int(q.Amount)),
		slog.Bool("has_cursor", q.Cursor != ""),
	)

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w: empty user id", op, ErrInvalidArgument)
	}

	if q.Sort == "" {
		q.Sort = models.SortLatest
	}

	if err := validateListQuery(q); err != nil {
		lg.Warn("unread_items_invalid_query",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	amount := s.normalizeAmount(ctx, userID, q.Amount)

	var feedIDs []uuid.UUID
	switch q.View {
	case models.ViewOne, models.ViewDiscover:
		feedIDs = []uuid.UUID{q.FeedID}
	case models.ViewMultiple:
		ids, err := s.storage.FolderFeedIDs(ctx, q.FolderID, userID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				lg.Warn("unread_items_unknown_folder",
					slog.String("op", op),
					slog.String("folder", q.FolderID.String()),
				)

				return nil, fmt.Errorf("%s: %w: unknown folder", op, ErrInvalidArgument)
			}

			lg.Error("unread_items_folder_resolve_error",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)

			return nil, fmt.Errorf("%s: %w", op, err)
		}

		// Пустая папка: без этой ветки пустое ограничение по фидам
		// превратило бы запрос в выборку по всем подпискам.
		if len(ids) == 0 {
			return &models.Page{}, nil
		}

		feedIDs = ids
	}

	windowStart := s.now().UTC().AddDate(0, 0, -s.cfg.Window.Days)
	filter := buildViewFilter(userID, q.View, q.Sort, feedIDs, windowStart)

	page, err := s.storage.ListItems(ctx, filter, models.ListOptions{Limit: amount, Cursor: q.Cursor})
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCursor) {
			lg.Warn("unread_items_invalid_cursor",
				slog.String("op", op),
			)

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCursor)
		}

		lg.Error("unread_items_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	records := page.Records

	if s.windowFiltered(q.View) {
		starts, err := s.storage.PaginationStarts(ctx, userID, recordFeedIDs(records))
		if err != nil {
			lg.Error("unread_items_window_lookup_error",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)

			return nil, fmt.Errorf("%s: %w", op, err)
		}

		records = filterSubscriptionWindow(records, starts)
	}

	items := projectRecords(records)

	if q.View == models.ViewRecentlyRead {
		stabilizeReadOrder(items, q.Sort)
	}

	if q.View != models.ViewNewsletters && s.cfg.Dedup.Enabled {
		items = s.suppress(ctx, userID, items, crossPageView(q.View), q.Cursor != "")
	}

	lg.Info("unread_items_ok",
		slog.String("op", op),
		slog.Int("items", len(items)),
		slog.Bool("has_next_cursor", page.NextCursor != ""),
	)

	return &models.Page{Items: items, NextCursor: page.NextCursor}, nil
}

// windowFiltered сообщает, применяется ли к вью фильтр окна подписки:
// штатно — только "all"; за флагом features.window_all_views — также
// one/multiple (граница вне "all" — незавершённая фича исходной системы).
func (s *Service) windowFiltered(view models.ViewType) bool {
	if view == models.ViewAll {
		return true
	}
	if s.cfg.Features.WindowAllViews {
		return view == models.ViewOne || view == models.ViewMultiple
	}

	return false
}

// crossPageView сообщает, включено ли для вью межстраничное подавление
// дубликатов. Только непрочитанные вью: в recentlyread и bookmarks материал
// сам является прочитанным/сохранённым и совпал бы с собственным отпечатком.
func crossPageView(view models.ViewType) bool {
	switch view {
	case models.ViewAll, models.ViewOne, models.ViewMultiple, models.ViewDiscover:
		return true
	}

	return false
}

// normalizeAmount приводит запрошенный размер страницы к серверным лимитам.
func (s *Service) normalizeAmount(ctx context.Context, userID uuid.UUID, amount int32) int32 {
	if amount <= 0 {
		amount = s.cfg.LimitsConfig.Default
	}
	if s.cfg.LimitsConfig.Max > 0 && amount > s.cfg.LimitsConfig.Max {
		amount = s.cfg.LimitsConfig.Max
	}

	if s.cfg.Features.PlanLimit {
		if plan := s.planFor(ctx, userID); plan == models.PlanFree && amount > s.cfg.LimitsConfig.FreeMax {
			amount = s.cfg.LimitsConfig.FreeMax
		}
	}

	return amount
}

// planFor возвращает тариф пользователя; при ошибке коллаборатора —
// наиболее ограничивающий (free) с предупреждением в лог.
func (s *Service) planFor(ctx context.Context, userID uuid.UUID) models.Plan {
	plan, err := s.plans.PlanFor(ctx, userID)
	if err != nil {
		log.From(ctx).Warn("plan_resolve_failed",
			slog.String("err", err.Error()),
		)

		return models.PlanFree
	}

	return plan
}
