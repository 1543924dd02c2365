package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bmsull560/refeed/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Тесты поиска (search.go): тарифная развилка поиска по телу,
// нормализация take, приведение тела к читаемому тексту.

// TestSearchItems_PlanGatesContent — бесплатный тариф ищет только по
// заголовку, платный — также по телу.
func TestSearchItems_PlanGatesContent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		plan        models.Plan
		withContent bool
	}{
		{name: "free_title_only", plan: models.PlanFree, withContent: false},
		{name: "pro_with_content", plan: models.PlanPro, withContent: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t, testConfig())
			userID := uuid.New()

			env.plans.EXPECT().
				PlanFor(gomock.Any(), userID).
				Return(tc.plan, nil)
			env.store.EXPECT().
				SearchItems(gomock.Any(), userID, "golang", tc.withContent, int32(12)).
				Return([]models.ItemRecord{}, nil)

			_, err := env.svc.SearchItems(context.Background(), userID, "golang", 0)
			require.NoError(t, err)
		})
	}
}

// TestSearchItems_PlanResolveFailure — при отказе коллаборатора тарифа
// поиск деградирует до наиболее ограничивающего (только заголовок).
func TestSearchItems_PlanResolveFailure(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testConfig())
	userID := uuid.New()

	env.plans.EXPECT().
		PlanFor(gomock.Any(), userID).
		Return(models.Plan(""), errors.New("billing down"))
	env.store.EXPECT().
		SearchItems(gomock.Any(), userID, "golang", false, gomock.Any()).
		Return([]models.ItemRecord{}, nil)

	_, err := env.svc.SearchItems(context.Background(), userID, "golang", 10)
	require.NoError(t, err)
}

// TestSearchItems_TakeNormalization — take<=0 -> default, take>search_max -> search_max.
func TestSearchItems_TakeNormalization(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		requested int32
		want      int32
	}{
		{name: "zero_to_default", requested: 0, want: 12},
		{name: "above_max_capped", requested: 500, want: 50},
		{name: "in_range_kept", requested: 20, want: 20},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t, testConfig())
			userID := uuid.New()

			env.plans.EXPECT().
				PlanFor(gomock.Any(), userID).
				Return(models.PlanFree, nil)
			env.store.EXPECT().
				SearchItems(gomock.Any(), userID, "q", false, tc.want).
				Return([]models.ItemRecord{}, nil)

			_, err := env.svc.SearchItems(context.Background(), userID, "q", tc.requested)
			require.NoError(t, err)
		})
	}
}

// TestSearchItems_ReadableContent — тело результата приводится
// к читаемому тексту, заголовок фида подставляется в материал.
func TestSearchItems_ReadableContent(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testConfig())
	userID := uuid.New()

	env.plans.EXPECT().
		PlanFor(gomock.Any(), userID).
		Return(models.PlanPro, nil)
	env.store.EXPECT().
		SearchItems(gomock.Any(), userID, "go", true, gomock.Any()).
		Return([]models.ItemRecord{
			{
				ID:          3,
				Title:       "Go release",
				Content:     "<p>Go <b>1.24</b> is out.</p><script>x()</script>",
				Fingerprint: "fp",
				Feed:        models.FeedRef{Title: "Go Blog"},
			},
		}, nil)

	items, err := env.svc.SearchItems(context.Background(), userID, "go", 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Go 1.24 is out.", items[0].Content)
	require.Equal(t, "Go Blog", items[0].FeedTitle)
}

// TestSearchItemsFormatted — плоский вариант: без тарифа, без
// преобразования тела, поиск только по заголовку.
func TestSearchItemsFormatted(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testConfig())
	userID := uuid.New()

	raw := "<p>raw html</p>"

	env.store.EXPECT().
		SearchItems(gomock.Any(), userID, "go", false, int32(10)).
		Return([]models.ItemRecord{
			{ID: 3, Title: "Go release", Content: raw, Fingerprint: "fp"},
		}, nil)

	items, err := env.svc.SearchItemsFormatted(context.Background(), userID, "go", 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, raw, items[0].Content, "тело отдаётся как есть")
}

// TestSearch_QueryTrimmed — запрос обрезается по краям перед выборкой,
// пустой после обрезки запрос соответствует всему.
func TestSearch_QueryTrimmed(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testConfig())
	userID := uuid.New()

	env.store.EXPECT().
		SearchItems(gomock.Any(), userID, "", false, gomock.Any()).
		Return([]models.ItemRecord{}, nil)

	_, err := env.svc.SearchItemsFormatted(context.Background(), userID, "   ", 10)
	require.NoError(t, err)
}

// TestSearch_EmptyUserID — нулевой пользователь -> ErrInvalidArgument.
func TestSearch_EmptyUserID(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testConfig())

	env.plans.EXPECT().
		PlanFor(gomock.Any(), uuid.Nil).
		Return(models.PlanFree, nil).
		AnyTimes()

	_, err := env.svc.SearchItems(context.Background(), uuid.Nil, "q", 10)
	require.True(t, errors.Is(err, ErrInvalidArgument))

	_, err = env.svc.SearchItemsFormatted(context.Background(), uuid.Nil, "q", 10)
	require.True(t, errors.Is(err, ErrInvalidArgument))
}

// TestSearch_StorageError — ошибка стораджа прокидывается обёрнутой.
func TestSearch_StorageError(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, testConfig())
	userID := uuid.New()

	dbErr := errors.New("timeout")

	env.store.EXPECT().
		SearchItems(gomock.Any(), userID, "q", false, gomock.Any()).
		Return(nil, dbErr)

	_, err := env.svc.SearchItemsFormatted(context.Background(), userID, "q", 10)
	require.True(t, errors.Is(err, dbErr))
}
