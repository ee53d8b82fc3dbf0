package interactions

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/example/horror-feed/internal/platform/analytics"
)

// Store is the single source of truth for the interaction record.
// Mutations are serialized, applied through the pure Record functions and
// persisted immediately. Persistence failures are logged, never surfaced:
// the record in memory stays authoritative for the session.
type Store struct {
	mu     sync.Mutex
	rec    Record
	repo   Repository
	events *analytics.Publisher
	log    *zap.Logger
}

// NewStore loads the persisted record. Absence or corruption yields an
// empty record rather than an error.
func NewStore(ctx context.Context, repo Repository, events *analytics.Publisher, log *zap.Logger) *Store {
	rec, ok, err := repo.Load(ctx)
	switch {
	case err != nil:
		log.Warn("interactions: load failed, starting empty", zap.Error(err))
		rec = EmptyRecord()
	case !ok:
		rec = EmptyRecord()
	}
	return &Store{rec: rec, repo: repo, events: events, log: log}
}

// Snapshot returns a deep copy of the current record.
func (s *Store) Snapshot() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Clone()
}

// ToggleLike flips like membership for id and returns the new record.
func (s *Store) ToggleLike(ctx context.Context, id string) Record {
	s.mu.Lock()
	wasLiked := s.rec.Liked(id)
	s.rec = ToggleLike(s.rec, id)
	out := s.rec.Clone()
	s.persist(ctx)
	s.mu.Unlock()

	if wasLiked {
		s.events.Publish(analytics.SubjectVideoUnliked, "video_unliked", map[string]any{"video_id": id})
	} else {
		s.events.Publish(analytics.SubjectVideoLiked, "video_liked", map[string]any{"video_id": id})
	}
	return out
}

// Dislike hides id and returns the new record.
func (s *Store) Dislike(ctx context.Context, id string) Record {
	s.mu.Lock()
	s.rec = Dislike(s.rec, id)
	out := s.rec.Clone()
	s.persist(ctx)
	s.mu.Unlock()

	s.events.Publish(analytics.SubjectVideoDisliked, "video_disliked", map[string]any{"video_id": id})
	return out
}

// Restore un-hides id and returns the new record.
func (s *Store) Restore(ctx context.Context, id string) Record {
	s.mu.Lock()
	s.rec = Restore(s.rec, id)
	out := s.rec.Clone()
	s.persist(ctx)
	s.mu.Unlock()

	s.events.Publish(analytics.SubjectVideoRestored, "video_restored", map[string]any{"video_id": id})
	return out
}

// RecordProgress stores watch progress for id and returns the new record.
func (s *Store) RecordProgress(ctx context.Context, id string, progress float64) Record {
	s.mu.Lock()
	s.rec = RecordProgress(s.rec, id, progress)
	out := s.rec.Clone()
	s.persist(ctx)
	s.mu.Unlock()

	s.events.Publish(analytics.SubjectProgressRecorded, "progress_recorded", map[string]any{
		"video_id": id,
		"progress": progress,
	})
	return out
}

// persist writes the current record; callers hold the mutex.
func (s *Store) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.rec); err != nil {
		s.log.Warn("interactions: save failed", zap.Error(err))
	}
}
