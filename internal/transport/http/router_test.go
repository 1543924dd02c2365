package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bmsull560/refeed/internal/config"
	"github.com/bmsull560/refeed/internal/models"
	"github.com/bmsull560/refeed/internal/service"
	"github.com/bmsull560/refeed/internal/storage"
	"github.com/bmsull560/refeed/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Тесты REST-поверхности: маршрутизация, аутентификация по X-User-Id,
// парсинг параметров, сериализация ответов и маппинг ошибок сервиса.
// Сервис собирается настоящий, коллабораторы — gomock.

type routerEnv struct {
	handler http.Handler
	store   *mocks.MockStorage
	userID  uuid.UUID
}

func newRouterEnv(t *testing.T, opts Options) *routerEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	store := mocks.NewMockStorage(ctrl)
	seen := mocks.NewMockSeenCache(ctrl)

	cfg := config.Config{
		LimitsConfig: config.LimitsConfig{Default: 12, Max: 100, SearchMax: 50, FreeMax: 50},
		Window:       config.WindowConfig{Days: 30},
		Dedup:        config.DedupConfig{Enabled: false},
	}

	svc := service.New(store, seen, service.NewStaticPlanResolver(models.PlanFree), cfg)

	return &routerEnv{
		handler: NewRouter(svc, opts),
		store:   store,
		userID:  uuid.New(),
	}
}

func (e *routerEnv) do(t *testing.T, target string, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authed {
		req.Header.Set("X-User-Id", e.userID.String())
	}

	rr := httptest.NewRecorder()
	e.handler.ServeHTTP(rr, req)
	return rr
}

type errBody struct {
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func errCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var body errBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error.Code
}

func TestRouter_Unauthenticated(t *testing.T) {
	t.Parallel()

	env := newRouterEnv(t, Options{})

	for _, target := range []string{"/items?type=all", "/items/search?q=go", "/items/search/plain?q=go"} {
		rr := env.do(t, target, false)
		require.Equal(t, http.StatusUnauthorized, rr.Code, target)
		require.Equal(t, "unauthenticated", errCode(t, rr), target)
	}
}

func TestRouter_ListItems_OK(t *testing.T) {
	t.Parallel()

	env := newRouterEnv(t, Options{})

	createdAt := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	feedID := uuid.New()

	env.store.EXPECT().
		ListItems(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.RecordPage{
			Records: []models.ItemRecord{{
				ID:          7,
				FeedID:      feedID,
				Title:       "Go release",
				Content:     "<p>body</p>",
				Fingerprint: "fp",
				CreatedAt:   createdAt,
				Feed:        models.FeedRef{Title: "Go Blog", LogoURL: "https://example.org/logo.png"},
			}},
			NextCursor: "token",
		}, nil)
	env.store.EXPECT().
		PaginationStarts(gomock.Any(), env.userID, gomock.Any()).
		Return(map[uuid.UUID]time.Time{}, nil)

	rr := env.do(t, "/items?type=all&amount=10", true)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp struct {
		Items []struct {
			ID        int64  `json:"id"`
			Title     string `json:"title"`
			FeedTitle string `json:"feed_title"`
			Read      bool   `json:"read"`
		} `json:"items"`
		NextCursor string `json:"next_cursor"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	require.Equal(t, int64(7), resp.Items[0].ID)
	require.Equal(t, "Go Blog", resp.Items[0].FeedTitle)
	require.False(t, resp.Items[0].Read)
	require.Equal(t, "token", resp.NextCursor)
}

func TestRouter_ListItems_OmitsEmptyCursor(t *testing.T) {
	t.Parallel()

	env := newRouterEnv(t, Options{})

	env.store.EXPECT().
		ListItems(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.RecordPage{}, nil)
	env.store.EXPECT().
		PaginationStarts(gomock.Any(), env.userID, gomock.Any()).
		Return(map[uuid.UUID]time.Time{}, nil)

	rr := env.do(t, "/items?type=all", true)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotContains(t, rr.Body.String(), "next_cursor")
}

func TestRouter_ListItems_BadParams(t *testing.T) {
	t.Parallel()

	env := newRouterEnv(t, Options{})

	cases := []struct {
		name     string
		target   string
		wantCode string
	}{
		{name: "unknown_view", target: "/items?type=magic", wantCode: "unsupported_view"},
		{name: "bad_amount", target: "/items?type=all&amount=ten", wantCode: "invalid_argument"},
		{name: "bad_folder", target: "/items?type=multiple&folder=not-a-uuid", wantCode: "invalid_argument"},
		{name: "bad_feed_id", target: "/items?type=one&feed_id=42", wantCode: "invalid_argument"},
		{name: "one_without_feed", target: "/items?type=one", wantCode: "invalid_argument"},
		{name: "multiple_without_folder", target: "/items?type=multiple", wantCode: "invalid_argument"},
		{name: "bad_sort", target: "/items?type=all&sort=Fastest", wantCode: "invalid_argument"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rr := env.do(t, tc.target, true)
			require.Equal(t, http.StatusBadRequest, rr.Code)
			require.Equal(t, tc.wantCode, errCode(t, rr))
		})
	}
}

func TestRouter_ListItems_InvalidCursor(t *testing.T) {
	t.Parallel()

	env := newRouterEnv(t, Options{})

	env.store.EXPECT().
		ListItems(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, storage.ErrInvalidCursor)

	rr := env.do(t, "/items?type=all&cursor=garbage", true)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid_cursor", errCode(t, rr))
}

func TestRouter_Search_OK(t *testing.T) {
	t.Parallel()

	env := newRouterEnv(t, Options{})

	// Статический тариф free: поиск только по заголовку.
	env.store.EXPECT().
		SearchItems(gomock.Any(), env.userID, "go", false, int32(5)).
		Return([]models.ItemRecord{{
			ID:          3,
			Title:       "Go news",
			Content:     "<p>Go <b>1.24</b></p>",
			Fingerprint: "fp",
			Feed:        models.FeedRef{Title: "Go Blog"},
		}}, nil)

	rr := env.do(t, "/items/search?q=go&take=5", true)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Items []struct {
			Content   string `json:"content"`
			FeedTitle string `json:"feed_title"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	require.Equal(t, "Go 1.24", resp.Items[0].Content, "тело приведено к читаемому тексту")
	require.Equal(t, "Go Blog", resp.Items[0].FeedTitle)
}

func TestRouter_SearchPlain_OK(t *testing.T) {
	t.Parallel()

	env := newRouterEnv(t, Options{})

	raw := "<p>raw</p>"

	env.store.EXPECT().
		SearchItems(gomock.Any(), env.userID, "go", false, int32(5)).
		Return([]models.ItemRecord{{ID: 3, Title: "Go news", Content: raw, Fingerprint: "fp"}}, nil)

	rr := env.do(t, "/items/search/plain?q=go&take=5", true)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Items []struct {
			Content string `json:"content"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	require.Equal(t, raw, resp.Items[0].Content, "тело без преобразования")
}

func TestRouter_Search_BadTake(t *testing.T) {
	t.Parallel()

	env := newRouterEnv(t, Options{})

	rr := env.do(t, "/items/search?q=go&take=many", true)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid_argument", errCode(t, rr))
}

func TestRouter_BasePath(t *testing.T) {
	t.Parallel()

	env := newRouterEnv(t, Options{BasePath: "/api"})

	env.store.EXPECT().
		ListItems(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.RecordPage{}, nil)
	env.store.EXPECT().
		PaginationStarts(gomock.Any(), env.userID, gomock.Any()).
		Return(map[uuid.UUID]time.Time{}, nil)

	rr := env.do(t, "/api/items?type=all", true)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = env.do(t, "/items?type=all", true)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_RequestIDHeader(t *testing.T) {
	t.Parallel()

	env := newRouterEnv(t, Options{})

	env.store.EXPECT().
		ListItems(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.RecordPage{}, nil)
	env.store.EXPECT().
		PaginationStarts(gomock.Any(), env.userID, gomock.Any()).
		Return(map[uuid.UUID]time.Time{}, nil)

	rr := env.do(t, "/items?type=all", true)
	require.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}
