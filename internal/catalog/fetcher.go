package catalog

import (
	"context"

	"go.uber.org/zap"
)

// Lister is the port for the remote catalog listing.
type Lister interface {
	List(ctx context.Context) ([]Resource, error)
}

// Fetcher resolves the catalog through three descending tiers:
// live listing, cached snapshot, embedded defaults. Fetch never fails
// outward; degradation trades freshness for availability.
type Fetcher struct {
	client    Lister
	cache     Cache
	baseURL   string
	cloudName string
	log       *zap.Logger
}

func NewFetcher(client *Client, cache Cache, log *zap.Logger) *Fetcher {
	return &Fetcher{
		client:    client,
		cache:     cache,
		baseURL:   client.BaseURL,
		cloudName: client.CloudName,
		log:       log,
	}
}

// Fetch returns a non-empty catalog snapshot. One attempt per tier,
// no retries. An empty live listing falls through to the embedded
// defaults rather than the cache: the collection genuinely has no
// content, so a stale cache would be misleading.
func (f *Fetcher) Fetch(ctx context.Context) []Video {
	resources, err := f.client.List(ctx)
	if err != nil {
		f.log.Warn("catalog: live fetch failed, trying cache", zap.Error(err))
		return f.fromCache(ctx)
	}
	if len(resources) == 0 {
		f.log.Warn("catalog: live listing empty, using embedded defaults")
		return FallbackVideos()
	}

	videos := NormalizeAll(f.baseURL, f.cloudName, resources)
	if err := f.cache.Put(ctx, videos); err != nil {
		f.log.Warn("catalog: cache write failed", zap.Error(err))
	}
	f.log.Info("catalog: live fetch ok", zap.Int("videos", len(videos)))
	return videos
}

func (f *Fetcher) fromCache(ctx context.Context) []Video {
	videos, err := f.cache.Get(ctx)
	if err != nil {
		f.log.Warn("catalog: cache read failed, using embedded defaults", zap.Error(err))
		return FallbackVideos()
	}
	if len(videos) == 0 {
		f.log.Info("catalog: cache empty, using embedded defaults")
		return FallbackVideos()
	}
	f.log.Info("catalog: serving cached snapshot", zap.Int("videos", len(videos)))
	return videos
}
