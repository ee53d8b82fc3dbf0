package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// FeedConfig holds the feed-service specific settings.
type FeedConfig struct {
	CatalogBaseURL string
	CloudName      string
	CollectionTag  string
	RankerURL      string // empty disables ranking
	StateDir       string
	RedisDSN       string
	DatabaseURL    string
	NATSURL        string // empty disables analytics
	CacheTTL       time.Duration
}

// LoadFeed reads the feed configuration from the environment.
func LoadFeed() (FeedConfig, error) {
	cfg := FeedConfig{
		CatalogBaseURL: strings.TrimSpace(os.Getenv("CATALOG_BASE_URL")),
		CloudName:      strings.TrimSpace(os.Getenv("CATALOG_CLOUD_NAME")),
		CollectionTag:  strings.TrimSpace(os.Getenv("CATALOG_COLLECTION_TAG")),
		RankerURL:      strings.TrimSpace(os.Getenv("RANKER_URL")),
		StateDir:       strings.TrimSpace(os.Getenv("STATE_DIR")),
		RedisDSN:       strings.TrimSpace(os.Getenv("REDIS_DSN")),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		NATSURL:        strings.TrimSpace(os.Getenv("NATS_URL")),
		CacheTTL:       24 * time.Hour,
	}
	if cfg.CloudName == "" {
		return FeedConfig{}, errors.New("CATALOG_CLOUD_NAME is required")
	}
	if cfg.CollectionTag == "" {
		return FeedConfig{}, errors.New("CATALOG_COLLECTION_TAG is required")
	}
	if cfg.StateDir == "" {
		cfg.StateDir = "data"
	}
	if v := strings.TrimSpace(os.Getenv("CATALOG_CACHE_TTL_HOURS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CacheTTL = time.Duration(n) * time.Hour
		}
	}
	return cfg, nil
}
