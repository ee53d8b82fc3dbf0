package interactions

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresRepository keeps the record as a single JSONB row keyed by the
// fixed storage key.
//
// Schema:
//
//	CREATE TABLE IF NOT EXISTS user_interactions (
//	    profile_key TEXT PRIMARY KEY,
//	    record      JSONB NOT NULL,
//	    updated_at  TIMESTAMPTZ NOT NULL
//	);
type postgresRepository struct {
	db *pgxpool.Pool
}

func newPostgresRepository(db *pgxpool.Pool) *postgresRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Load(ctx context.Context) (Record, bool, error) {
	var raw []byte
	err := r.db.QueryRow(ctx,
		`SELECT record FROM user_interactions WHERE profile_key = $1`, StorageKey,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, false, nil
		}
		return Record{}, false, err
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}, false, err
	}
	return rec, true, nil
}

func (r *postgresRepository) Save(ctx context.Context, rec Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
INSERT INTO user_interactions (profile_key, record, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (profile_key)
DO UPDATE SET record = EXCLUDED.record, updated_at = EXCLUDED.updated_at`,
		StorageKey, raw, time.Now().UTC())
	return err
}
