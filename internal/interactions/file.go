package interactions

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// fileRepository stores the record as a single JSON file under the state
// directory, named after the fixed storage key.
type fileRepository struct {
	path string
}

func newFileRepository(stateDir string) *fileRepository {
	if stateDir == "" {
		stateDir = "data"
	}
	return &fileRepository{path: filepath.Join(stateDir, StorageKey+".json")}
}

func (r *fileRepository) Load(_ context.Context) (Record, bool, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Record{}, false, nil
		}
		return Record{}, false, err
	}
	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return Record{}, false, err
	}
	return rec, true, nil
}

func (r *fileRepository) Save(_ context.Context, rec Record) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}
