package main

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/example/horror-feed/internal/catalog"
	feedconfig "github.com/example/horror-feed/internal/config"
	"github.com/example/horror-feed/internal/feed"
	"github.com/example/horror-feed/internal/handlers"
	"github.com/example/horror-feed/internal/interactions"
	"github.com/example/horror-feed/internal/platform/analytics"
	"github.com/example/horror-feed/internal/platform/config"
	"github.com/example/horror-feed/internal/platform/db"
	"github.com/example/horror-feed/internal/platform/httpserver"
	"github.com/example/horror-feed/internal/platform/logging"
	"github.com/example/horror-feed/internal/platform/natsconn"
	"github.com/example/horror-feed/internal/platform/run"
	"github.com/example/horror-feed/internal/ranker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	feedCfg, err := feedconfig.LoadFeed()
	if err != nil {
		log.Error("load feed config", zap.Error(err))
		run.Exit(1)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Analytics is optional: without NATS the publisher is a no-op stub.
	var events *analytics.Publisher
	if feedCfg.NATSURL != "" {
		nc, err := natsconn.Connect(natsconn.Options{URL: feedCfg.NATSURL})
		if err != nil {
			log.Warn("nats unavailable, analytics disabled", zap.Error(err))
		} else {
			defer nc.Close()
			var js nats.JetStreamContext
			if js, err = nc.JetStream(); err != nil {
				log.Warn("jetstream unavailable, analytics disabled", zap.Error(err))
			} else {
				events = analytics.New(js, log)
			}
		}
	}

	// Interaction persistence: Postgres when configured, local file otherwise.
	var repo interactions.Repository
	if feedCfg.DatabaseURL != "" {
		pool, err := db.Open(startCtx, feedCfg.DatabaseURL)
		if err != nil {
			log.Error("open database", zap.Error(err))
			run.Exit(1)
		}
		defer pool.Close()
		repo = interactions.NewRepository(pool, feedCfg.StateDir, log)
	} else {
		repo = interactions.NewRepository(nil, feedCfg.StateDir, log)
	}
	store := interactions.NewStore(startCtx, repo, events, log)

	client := catalog.NewClient(feedCfg.CatalogBaseURL, feedCfg.CloudName, feedCfg.CollectionTag)
	cache := catalog.NewCache(feedCfg.RedisDSN, feedCfg.StateDir, feedCfg.CacheTTL, log)
	fetcher := catalog.NewFetcher(client, cache, log)

	var rank feed.Ranker
	if feedCfg.RankerURL != "" {
		rank = ranker.NewClient(feedCfg.RankerURL)
	} else {
		log.Info("ranker not configured, feed keeps fetch order")
	}

	svc := feed.NewService(fetcher, rank, ranker.ApplyOrder, store, events, log)

	r := chi.NewRouter()
	httpserver.SetupRouter(r)

	r.Get("/v1/feed", handlers.GetHome(svc))
	r.Post("/v1/feed/refresh", handlers.PostRefresh(svc))
	r.Get("/v1/feed/saved", handlers.GetSaved(svc))
	r.Get("/v1/feed/hidden", handlers.GetHidden(svc))
	r.Get("/v1/feed/category", handlers.GetCategory(svc))
	r.Get("/v1/categories", handlers.GetCategories())

	r.Get("/v1/interactions", handlers.GetInteractions(store))
	r.Post("/v1/videos/{video_id}/like", handlers.PostLike(store))
	r.Post("/v1/videos/{video_id}/dislike", handlers.PostDislike(store))
	r.Post("/v1/videos/{video_id}/restore", handlers.PostRestore(store))
	r.Post("/v1/videos/{video_id}/progress", handlers.PostProgress(store))

	srv := httpserver.New(httpserver.Options{Addr: cfg.HTTP.Addr, ServiceName: cfg.ServiceName, Logger: log, Router: r})

	runner := run.New(log)
	code := runner.WithSignals(func(ctx context.Context) error {
		go func() {
			<-ctx.Done()
			_ = srv.Shutdown(context.Background())
		}()
		return srv.Start(log)
	})

	log.Info("exit", zap.Int("code", code))
	run.Exit(code)
}
