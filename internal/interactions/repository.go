package interactions

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// StorageKey is the fixed key the interaction record is persisted under.
// It doubles as the Postgres profile key and the state file name.
const StorageKey = "al-hadiqa-interactions-v5"

// Repository persists the interaction record. Save overwrites the full
// record and must be idempotent: two rapid successive saves both land.
type Repository interface {
	// Load returns the persisted record. ok=false means nothing stored yet.
	// A decode error is returned as err; callers substitute an empty record.
	Load(ctx context.Context) (rec Record, ok bool, err error)
	Save(ctx context.Context, rec Record) error
}

// NewRepository creates the best available backend:
// Postgres > local JSON file.
func NewRepository(pool *pgxpool.Pool, stateDir string, log *zap.Logger) Repository {
	if pool != nil {
		log.Info("interactions: using postgres repository")
		return newPostgresRepository(pool)
	}
	log.Info("interactions: using file repository", zap.String("dir", stateDir))
	return newFileRepository(stateDir)
}
