package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skn143/lifelessons/internal/domain/entity"
)

// LessonCacheStore caches lesson list pages in redis. Keys carry the
// filter fingerprint; any lesson write invalidates every list key.
type LessonCacheStore struct {
	rdb     *redis.Client
	listTTL time.Duration
}

func NewLessonCacheStore(rdb *redis.Client) *LessonCacheStore {
	return &LessonCacheStore{
		rdb:     rdb,
		listTTL: 5 * time.Minute,
	}
}

// ListKey builds the cache key for a filter combination.
func ListKey(isPublic, email, category, excludeID string) string {
	return fmt.Sprintf("lessons:list:%s:%s:%s:%s", isPublic, email, category, excludeID)
}

func (c *LessonCacheStore) GetLessonsPage(ctx context.Context, key string) ([]entity.Lesson, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var lessons []entity.Lesson
	if err := json.Unmarshal(b, &lessons); err != nil {
		return nil, false, nil
	}
	return lessons, true, nil
}

func (c *LessonCacheStore) SetLessonsPage(ctx context.Context, key string, lessons []entity.Lesson) error {
	data, err := json.Marshal(lessons)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.listTTL).Err()
}

func (c *LessonCacheStore) InvalidateLessonLists(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, "lessons:list:*", 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	_, _ = pipe.Exec(ctx)
	return nil
}
