package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const cacheFileName = "catalog_cache.json"

// fileCache persists the last normalized catalog as a JSON file under the
// state directory. Writes go through a temp file and rename so a crashed
// write never leaves a half-written snapshot behind.
type fileCache struct {
	path string
}

func newFileCache(stateDir string) *fileCache {
	if stateDir == "" {
		stateDir = "data"
	}
	return &fileCache{path: filepath.Join(stateDir, cacheFileName)}
}

func (c *fileCache) Get(_ context.Context) ([]Video, error) {
	b, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
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

func (c *fileCache) Put(_ context.Context, videos []Video) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	b, err := json.Marshal(videos)
	if err != nil {
		return err
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.path)
}
