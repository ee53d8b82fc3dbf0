// Package feed composes the catalog fetcher, the recommendation ranker and
// the interaction store into the views the presentation layer consumes.
package feed

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/horror-feed/internal/catalog"
	"github.com/example/horror-feed/internal/interactions"
	"github.com/example/horror-feed/internal/platform/analytics"
)

// Fetcher is the catalog port. It never fails outward.
type Fetcher interface {
	Fetch(ctx context.Context) []catalog.Video
}

// Ranker is the scoring port. Errors mean "leave the order alone".
type Ranker interface {
	Rank(ctx context.Context, videos []catalog.Video, rec interactions.Record) ([]string, error)
}

// ApplyOrderFunc splices a ranked id order onto a catalog.
type ApplyOrderFunc func(videos []catalog.Video, order []string) []catalog.Video

// Snapshot is the current catalog with a token identifying the fetch that
// produced it. Ranking results carry the token they were computed for and
// are discarded when it no longer matches.
type Snapshot struct {
	Token  string
	Videos []catalog.Video
}

// Service owns the current snapshot. Refresh publishes the fetched catalog
// immediately and fires ranking out-of-band: render first, enhance later.
type Service struct {
	mu      sync.RWMutex
	snap    Snapshot
	fetcher Fetcher
	ranker  Ranker
	splice  ApplyOrderFunc
	store   *interactions.Store
	events  *analytics.Publisher
	log     *zap.Logger
}

func NewService(fetcher Fetcher, ranker Ranker, splice ApplyOrderFunc, store *interactions.Store, events *analytics.Publisher, log *zap.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		ranker:  ranker,
		splice:  splice,
		store:   store,
		events:  events,
		log:     log,
	}
}

// Refresh fetches the catalog, publishes it under a new token and kicks off
// ranking in the background. The returned snapshot is the pre-rank order;
// the ranked order replaces it later only if no newer fetch has superseded
// this one.
func (s *Service) Refresh(ctx context.Context) Snapshot {
	videos := s.fetcher.Fetch(ctx)
	token := uuid.NewString()

	s.mu.Lock()
	s.snap = Snapshot{Token: token, Videos: videos}
	snap := s.snap
	s.mu.Unlock()

	s.events.Publish(analytics.SubjectFeedRefreshed, "feed_refreshed", map[string]any{
		"videos": len(videos),
	})

	if s.ranker != nil {
		rec := s.store.Snapshot()
		go s.rank(token, videos, rec)
	}
	return snap
}

// Current returns the latest snapshot, fetching once if none exists yet.
func (s *Service) Current(ctx context.Context) Snapshot {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()
	if snap.Token != "" {
		return snap
	}
	return s.Refresh(ctx)
}

// rank runs detached from the request that triggered the refresh; the only
// cancellation point is the stale-token discard on arrival.
func (s *Service) rank(token string, videos []catalog.Video, rec interactions.Record) {
	order, err := s.ranker.Rank(context.Background(), videos, rec)
	if err != nil {
		s.log.Warn("feed: ranking failed, keeping fetch order", zap.Error(err))
		return
	}
	s.applyOrder(token, order)
}

// applyOrder replaces the snapshot ordering if token still identifies the
// current snapshot. Stale results are dropped.
func (s *Service) applyOrder(token string, order []string) {
	s.mu.Lock()
	if s.snap.Token != token {
		s.mu.Unlock()
		s.log.Info("feed: stale ranking discarded", zap.String("token", token))
		return
	}
	s.snap.Videos = s.splice(s.snap.Videos, order)
	s.mu.Unlock()

	s.events.Publish(analytics.SubjectFeedReranked, "feed_reranked", map[string]any{
		"ordered": len(order),
	})
	s.log.Info("feed: ranked order applied", zap.Int("ordered", len(order)))
}

// Interactions exposes the store snapshot for view assembly.
func (s *Service) Interactions() interactions.Record {
	return s.store.Snapshot()
}
