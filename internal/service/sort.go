package service

import (
	"sort"

	"github.com/bmsull560/refeed/internal/models"
)

// stabilizeReadOrder пересортировывает страницу на месте по времени прочтения:
// убывание для Latest (и прочих сортировок), возрастание для Oldest.
//
// Работает только внутри уже выбранной страницы (выборка шла в порядке
// id DESC) и глобального порядка по времени прочтения между страницами
// не гарантирует — известное ограничение. Чистая перестановка без side
// effects, материалы без ReadAt уходят в конец.
func stabilizeReadOrder(items []models.Item, order models.SortOrder) {
	asc := order == models.SortOldest

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].ReadAt, items[j].ReadAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		case asc:
			return a.Before(*b)
		default:
			return a.After(*b)
		}
	})
}
