package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bmsull560/refeed/internal/models"
	"github.com/bmsull560/refeed/internal/pkg/htmltext"
	"github.com/bmsull560/refeed/internal/pkg/log"

	"github.com/google/uuid"
)

// SearchItems — регистронезависимый подстрочный поиск по материалам фидов,
// подписанных пользователем. Поиск по заголовку всегда; по телу — только
// если тариф пользователя это разрешает. Пустой запрос соответствует всему.
//
// Тело в результатах приводится к читаемому тексту, заголовок фида
// подставляется в каждый материал.
func (s *Service) SearchItems(ctx context.Context, userID uuid.UUID, query string, take int32) ([]models.Item, error) {
	const op = "service.search.SearchItems"

	withContent := s.planFor(ctx, userID).ContentSearch()

	items, err := s.search(ctx, op, userID, query, withContent, take)
	if err != nil {
		return nil, err
	}

	for i := range items {
		items[i].Content = htmltext.Readable(items[i].Content)
	}

	return items, nil
}

// SearchItemsFormatted — вариант поиска для единообразной с постраничными
// вью выдачи: плоская подстановка заголовка фида без преобразования тела.
// Поиск только по заголовку, тариф не участвует.
func (s *Service) SearchItemsFormatted(ctx context.Context, userID uuid.UUID, query string, take int32) ([]models.Item, error) {
	const op = "service.search.SearchItemsFormatted"

	return s.search(ctx, op, userID, query, false, take)
}

// search — общий путь обоих вариантов: нормализация take по лимитам,
// выборка и проекция (заголовок фида попадает в материал при проекции).
func (s *Service) search(ctx context.Context, op string, userID uuid.UUID, query string, withContent bool, take int32) ([]models.Item, error) {
	lg := log.From(ctx)
	lg.Info("search_items_request",
		slog.String("op", op),
		slog.Bool("has_query", strings.TrimSpace(query) != ""),
		slog.Bool("with_content", withContent),
		slog.Int("take", int(take)),
	)

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w: empty user id", op, ErrInvalidArgument)
	}

	if take <= 0 {
		take = s.cfg.LimitsConfig.Default
	}
	if s.cfg.LimitsConfig.SearchMax > 0 && take > s.cfg.LimitsConfig.SearchMax {
		take = s.cfg.LimitsConfig.SearchMax
	}

	records, err := s.storage.SearchItems(ctx, userID, strings.TrimSpace(query), withContent, take)
	if err != nil {
		lg.Error("search_items_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := projectRecords(records)

	lg.Info("search_items_ok",
		slog.String("op", op),
		slog.Int("items", len(items)),
	)

	return items, nil
}
