package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisCacheKey = "feed:catalog:last"

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func newRedisCache(dsn string, ttl time.Duration) *redisCache {
	opts, err := redis.ParseURL(dsn)
	if err != nil {
		opts = &redis.Options{Addr: dsn}
	}
	return &redisCache{
		client: redis.NewClient(opts),
		ttl:    ttl,
	}
}

func (c *redisCache) Get(ctx context.Context) ([]Video, error) {
	b, err := c.client.Get(ctx, redisCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var videos []Video
	if err := json.Unmarshal(b, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (c *redisCache) Put(ctx context.Context, videos []Video) error {
	b, err := json.Marshal(videos)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, redisCacheKey, b, c.ttl).Err()
}
