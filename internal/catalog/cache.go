package catalog

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Cache holds the last successfully normalized catalog snapshot.
// It is a single-slot cache: Put overwrites any prior snapshot.
// A (nil, nil) Get result means miss; read corruption is treated as a miss.
type Cache interface {
	Get(ctx context.Context) ([]Video, error)
	Put(ctx context.Context, videos []Video) error
}

// NewCache creates the best available catalog cache:
// Redis > local JSON file.
func NewCache(redisDSN, stateDir string, ttl time.Duration, log *zap.Logger) Cache {
	if redisDSN != "" {
		log.Info("catalog cache: using redis backend")
		return newRedisCache(redisDSN, ttl)
	}
	log.Info("catalog cache: using file backend", zap.String("dir", stateDir))
	return newFileCache(stateDir)
}
