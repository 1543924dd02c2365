package service

import (
	"context"
	"hash/fnv"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/bmsull560/refeed/internal/models"
	"github.com/bmsull560/refeed/internal/pkg/log"

	"github.com/google/uuid"
)

// fingerprintOf вычисляет ключ группы дубликатов по заголовку:
// нижний регистр, пунктуация отбрасывается, пробелы схлопываются,
// затем FNV-1a/64 в hex. Штатно отпечаток приходит из хранилища
// (его пишет ингест); вычисление здесь — запасной путь для записей
// с пустым значением.
func fingerprintOf(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	norm := strings.Join(strings.Fields(b.String()), " ")

	h := fnv.New64a()
	_, _ = h.Write([]byte(norm))

	return strconv.FormatUint(h.Sum64(), 16)
}

// suppressDuplicates убирает из страницы дубликаты уже показанного контента.
// Чистая функция над спроецированной страницей.
//
// Правила:
//   - surfaced — отпечатки, уже показанные пользователю (предыдущие страницы,
//     прочитанные материалы); их повторы отбрасываются;
//   - при crossFeed дополнительно схлопываются внутристраничные группы:
//     остаётся первый встреченный в порядке выборки представитель, поэтому
//     непустая группа страницы никогда не исчезает целиком.
func suppressDuplicates(items []models.Item, surfaced map[string]struct{}, crossFeed bool) []models.Item {
	out := make([]models.Item, 0, len(items))
	seen := make(map[string]struct{}, len(items))

	for _, item := range items {
		fp := item.Fingerprint

		if _, ok := surfaced[fp]; ok {
			continue
		}
		if crossFeed {
			if _, ok := seen[fp]; ok {
				continue
			}
			seen[fp] = struct{}{}
		}

		out = append(out, item)
	}

	return out
}

// suppress — обвязка suppressDuplicates с обращениями к коллабораторам.
//
// crossPage включает межстраничное подавление (только для непрочитанных
// вью). «Предыдущие страницы» живут строго в рамках сессии листания:
//   - continuing=false (запрос без курсора) начинает сессию — набор
//     показанного сбрасывается, иначе свежая первая страница подавила бы
//     собственные, всё ещё непрочитанные материалы из прошлых сессий;
//   - continuing=true — показанное на предыдущих страницах сессии
//     собирается из кэша;
//   - отпечатки уже прочитанного из БД — долговечный сигнал, применяется
//     в обоих случаях;
//   - фактически выданная страница помечается показанной.
//
// Любая ошибка обращений — fail-open: подавление — уточнение UX,
// первичная страница из-за него не абортируется.
func (s *Service) suppress(ctx context.Context, userID uuid.UUID, items []models.Item, crossPage, continuing bool) []models.Item {
	const op = "service.dedup.suppress"

	lg := log.From(ctx)

	surfaced := map[string]struct{}{}

	if crossPage {
		fps := make([]string, 0, len(items))
		for _, item := range items {
			fps = append(fps, item.Fingerprint)
		}

		if continuing {
			if hits, err := s.seen.Seen(ctx, userID, fps); err != nil {
				lg.Warn("dedup_cache_failed",
					slog.String("op", op),
					slog.String("err", err.Error()),
				)
			} else {
				for fp := range hits {
					surfaced[fp] = struct{}{}
				}
			}
		} else {
			if err := s.seen.Reset(ctx, userID); err != nil {
				lg.Warn("dedup_reset_failed",
					slog.String("op", op),
					slog.String("err", err.Error()),
				)
			}
		}

		if read, err := s.storage.ReadFingerprints(ctx, userID, fps); err != nil {
			lg.Warn("dedup_lookup_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		} else {
			for fp := range read {
				surfaced[fp] = struct{}{}
			}
		}
	}

	out := suppressDuplicates(items, surfaced, s.cfg.Dedup.CrossFeed)

	if crossPage && len(out) > 0 {
		outFps := make([]string, 0, len(out))
		for _, item := range out {
			outFps = append(outFps, item.Fingerprint)
		}

		if err := s.seen.MarkSeen(ctx, userID, outFps); err != nil {
			lg.Warn("dedup_mark_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	return out
}
