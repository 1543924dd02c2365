// cache хранит отпечатки материалов, уже показанных пользователю
// в рамках текущей сессии листания. Используется подавлением дубликатов
// для межстраничного сценария: страница, отданная клиенту, помечает свои
// отпечатки как показанные, следующие страницы той же сессии отбрасывают
// их повторы, а запрос без курсора начинает сессию заново.
package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SeenCache — минимальный контракт кэша показанных отпечатков.
// Кэш — уточнение UX, а не гарантия корректности: любая ошибка
// трактуется вызывающей стороной как «ничего не показано».
type SeenCache interface {
	// Seen возвращает подмножество fingerprints, уже показанных пользователю.
	Seen(ctx context.Context, userID uuid.UUID, fingerprints []string) (map[string]struct{}, error)
	// MarkSeen помечает отпечатки показанными и продлевает TTL ключа.
	MarkSeen(ctx context.Context, userID uuid.UUID, fingerprints []string) error
	// Reset сбрасывает показанное пользователю: начало новой сессии листания.
	Reset(ctx context.Context, userID uuid.UUID) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "reader:seen:".
func NewRedisCache(redisURL, prefix string, ttl time.Duration) (SeenCache, error) {
	if prefix == "" {
		prefix = "reader:seen:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix, ttl: ttl}, nil
}

func (c *redisCache) key(userID uuid.UUID) string { return c.prefix + userID.String() }

// Храним как Redis Set отпечатков на пользователя с общим TTL ключа.
func (c *redisCache) Seen(ctx context.Context, userID uuid.UUID, fingerprints []string) (map[string]struct{}, error) {
	result := make(map[string]struct{}, len(fingerprints))
	if len(fingerprints) == 0 {
		return result, nil
	}

	members := make([]any, 0, len(fingerprints))
	for _, fp := range fingerprints {
		members = append(members, fp)
	}

	hits, err := c.rdb.SMIsMember(ctx, c.key(userID), members...).Result()
	if err != nil {
		return nil, err
	}

	for i, hit := range hits {
		if hit {
			result[fingerprints[i]] = struct{}{}
		}
	}

	return result, nil
}

func (c *redisCache) MarkSeen(ctx context.Context, userID uuid.UUID, fingerprints []string) error {
	if len(fingerprints) == 0 {
		return nil
	}

	members := make([]any, 0, len(fingerprints))
	for _, fp := range fingerprints {
		members = append(members, fp)
	}

	key := c.key(userID)
	pipe := c.rdb.TxPipeline()
	pipe.SAdd(ctx, key, members...)
	pipe.Expire(ctx, key, c.ttl)

	_, err := pipe.Exec(ctx)
	return err
}

func (c *redisCache) Reset(ctx context.Context, userID uuid.UUID) error {
	return c.rdb.Del(ctx, c.key(userID)).Err()
}

func (c *redisCache) Close() error {
	return c.rdb.Close()
}

// NewNoop возвращает кэш-заглушку для конфигураций без Redis:
// ничего не помнит, ничего не помечает.
func NewNoop() SeenCache {
	return noopCache{}
}

type noopCache struct{}

func (noopCache) Seen(_ context.Context, _ uuid.UUID, _ []string) (map[string]struct{}, error) {
	return map[string]struct{}{}, nil
}

func (noopCache) MarkSeen(_ context.Context, _ uuid.UUID, _ []string) error { return nil }

func (noopCache) Reset(_ context.Context, _ uuid.UUID) error { return nil }

func (noopCache) Close() error { return nil }
