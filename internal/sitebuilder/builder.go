package sitebuilder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/averypt/personal-site/internal/chessfeed"
	"github.com/averypt/personal-site/internal/config"
	"github.com/averypt/personal-site/internal/content"
	"github.com/averypt/personal-site/internal/views"
	"github.com/averypt/personal-site/internal/web"
)

const userAgent = "personal-site/1.0 (+https://averythorpe.dev)"

// Deps holds everything cmd/site needs to run and shut down the site.
type Deps struct {
	Handler http.Handler
	Close   func()
}

// New wires config into the full dependency graph: fetch client, the two
// chess sources, aggregator, TTL cache, content stores, view counter and
// the gin server.
func New(cfg *config.AppConfig, logger *zap.Logger) (*Deps, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	client := chessfeed.NewClient(
		chessfeed.WithTimeout(time.Duration(cfg.FetchTimeoutSec)*time.Second),
		chessfeed.WithUserAgent(userAgent),
	)
	agg := chessfeed.NewAggregator([]chessfeed.SourceConfig{
		{Source: chessfeed.NewChessComClient(client, "", logger), Username: cfg.ChessComUser},
		{Source: chessfeed.NewLichessClient(client, "", logger), Username: cfg.LichessUser},
	}, cfg.GamesPerSource, cfg.GamesTotal, logger)
	cache := chessfeed.NewGameCache(agg, time.Duration(cfg.CacheTTLSec)*time.Second)

	// View counter (Redis optional). Without REDIS_URL counts reset on
	// restart, which is fine for a personal site.
	var viewStore views.Store
	closeFn := func() {}
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		rdb := redis.NewClient(opts)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		viewStore = views.NewRedisStore(rdb)
		closeFn = func() {
			if err := rdb.Close(); err != nil {
				logger.Warn("redis close failed", zap.Error(err))
			}
		}
	} else {
		logger.Info("REDIS_URL not set, using in-memory view counter")
		viewStore = views.NewMemoryStore()
	}

	blog := content.NewBlogStore(cfg.BlogDir, logger)
	projects := content.NewProjectStore(cfg.ProjectsFile, logger)

	server := web.New(web.Config{
		TemplateGlob: cfg.TemplateGlob,
		StaticDir:    cfg.StaticDir,
	}, blog, projects, cache, viewStore, logger)

	return &Deps{Handler: server.Handler(), Close: closeFn}, nil
}
