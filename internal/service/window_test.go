package service

import (
	"testing"
	"time"

	"github.com/bmsull560/refeed/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestFilterSubscriptionWindow — материалы старше границы подписки на их
// фид отбрасываются; материалы фидов без границы сохраняются.
func TestFilterSubscriptionWindow(t *testing.T) {
	t.Parallel()

	feedA := uuid.New()
	feedB := uuid.New()
	boundary := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	records := []models.ItemRecord{
		{ID: 5, FeedID: feedA, CreatedAt: boundary.Add(time.Hour)},
		{ID: 4, FeedID: feedA, CreatedAt: boundary.Add(-time.Hour)},
		{ID: 3, FeedID: feedA, CreatedAt: boundary},
		{ID: 2, FeedID: feedB, CreatedAt: boundary.Add(-24 * time.Hour)},
	}

	out := filterSubscriptionWindow(records, map[uuid.UUID]time.Time{feedA: boundary})

	require.Len(t, out, 3)
	require.Equal(t, int64(5), out[0].ID)
	require.Equal(t, int64(3), out[1].ID, "граница включительна")
	require.Equal(t, int64(2), out[2].ID, "фид без границы не фильтруется")
}

// TestRecordFeedIDs — уникальные id фидов в порядке первого вхождения.
func TestRecordFeedIDs(t *testing.T) {
	t.Parallel()

	feedA := uuid.New()
	feedB := uuid.New()

	ids := recordFeedIDs([]models.ItemRecord{
		{FeedID: feedA},
		{FeedID: feedB},
		{FeedID: feedA},
	})

	require.Equal(t, []uuid.UUID{feedA, feedB}, ids)
}

// TestRecordFeedIDs_Empty — пустая страница даёт пустой срез.
func TestRecordFeedIDs_Empty(t *testing.T) {
	t.Parallel()

	require.Empty(t, recordFeedIDs(nil))
}
