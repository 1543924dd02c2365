// service содержит бизнес-логику reader-сервиса: сборку предиката по режиму
// чтения, постраничную выборку, посткоррекции страницы (фильтр окна подписки,
// стабилизация порядка прочтения, подавление дубликатов) и поиск.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/bmsull560/refeed/internal/cache"
	"github.com/bmsull560/refeed/internal/config"
	"github.com/bmsull560/refeed/internal/models"
	"github.com/bmsull560/refeed/internal/storage"

	"github.com/google/uuid"
)

var (
	// ErrInvalidArgument — некорректные входные аргументы.
	// Транспорт: 400.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedView — неизвестный режим чтения.
	// Транспорт: 400.
	ErrUnsupportedView = errors.New("unsupported view type")
	// ErrInvalidCursor — битый/чужой cursor.
	// Транспорт: 400.
	ErrInvalidCursor = errors.New("invalid cursor")
)

// PlanResolver — коллаборатор проверки тарифа. Сама проверка — внешняя
// забота; сервис видит только итоговое значение тарифа.
type PlanResolver interface {
	PlanFor(ctx context.Context, userID uuid.UUID) (models.Plan, error)
}

// StaticPlanResolver — заглушка: всем пользователям отдаёт один тариф.
type StaticPlanResolver struct {
	plan models.Plan
}

// NewStaticPlanResolver создаёт заглушку с фиксированным тарифом.
func NewStaticPlanResolver(plan models.Plan) *StaticPlanResolver {
	return &StaticPlanResolver{plan: plan}
}

func (r *StaticPlanResolver) PlanFor(_ context.Context, _ uuid.UUID) (models.Plan, error) {
	return r.plan, nil
}

// Service — описывает бизнес-логику reader-service.
//
// Состояние между запросами не разделяется: курсоры и фильтры целиком
// живут в рамках запроса, масштабирование — запуском обработчиков
// параллельно без блокировок.
type Service struct {
	storage storage.Storage
	seen    cache.SeenCache
	plans   PlanResolver
	cfg     config.Config

	// now подменяется в тестах.
	now func() time.Time
}

// New создает новый экземпляр Service.
func New(storage storage.Storage, seen cache.SeenCache, plans PlanResolver, cfg config.Config) *Service {
	return &Service{
		storage: storage,
		seen:    seen,
		plans:   plans,
		cfg:     cfg,
		now:     time.Now,
	}
}
