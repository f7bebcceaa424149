package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"guardiant/internal/api"
	frameh "guardiant/internal/api/handlers/http/frame"
	"guardiant/internal/config"
	"guardiant/internal/content"
	"guardiant/internal/frame"
	"guardiant/internal/geo"
	"guardiant/internal/metrics"
	"guardiant/internal/redis"
	"guardiant/internal/render"
	"guardiant/internal/service"
	"guardiant/internal/storage/memory"
	"guardiant/internal/storage/postgres"
)

type Components struct {
	logger        *slog.Logger
	HttpServer    *api.Server
	Postgres      *postgres.Postgres
	Redis         *redis.Redis
	WebhookSender *service.WebhookSender
}

// incidentStorage is what InitComponents needs from either store backend.
type incidentStorage interface {
	service.IncidentRepository
	service.StatsRepository
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	var (
		storage incidentStorage
		pg      *postgres.Postgres
	)

	switch cfg.Store.Backend {
	case config.StorePostgres:
		logger.Info("initializing postgres store")
		var err error
		pg, err = postgres.NewPostgres(ctx, cfg, logger)
		if err != nil {
			logger.Error("failed to init postgres", slog.Any("error", err))
			return nil, fmt.Errorf("failed to init postgres: %w", err)
		}
		storage = pg.Incidents
	default:
		logger.Info("initializing in-memory store")
		storage = memory.NewStore()
	}

	var (
		redisClient *redis.Redis
		renderCache frameh.RenderCache
		shareQueue  service.ShareQueue
		consumer    service.ShareQueueConsumer
	)
	if !cfg.Redis.Disabled {
		logger.Info("initializing redis")
		rc, err := redis.NewRedis(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
		redisClient = rc
		renderCache = redis.NewRenderCache(rc, time.Hour)
		q := redis.NewShareQueue(rc.Client, "shares:queue")
		shareQueue = q
		consumer = q
	}

	m := metrics.New()
	registry := content.NewRegistry()
	resolver := geo.NewResolver()

	incidentSvc := service.NewIncidentService(storage, resolver, registry, shareQueue, logger, m)
	jurisdictionSvc := service.NewJurisdictionService(resolver, logger, m)
	statsSvc := service.NewStatsService(storage, registry)

	svc := service.NewService(incidentSvc, jurisdictionSvc, statsSvc)

	frameRouter := frame.NewRouter(registry, cfg.BaseURL)
	renderer := render.NewSVGRenderer()

	var sender *service.WebhookSender
	if consumer != nil && !cfg.Webhook.Disabled && cfg.Webhook.URL != "" {
		sender = service.NewWebhookSender(logger, cfg.Webhook, consumer)
	}

	httpServer := api.NewServer(cfg, logger, svc, frameRouter, renderer, renderCache, m)
	logger.Info("initialized server")

	return &Components{
		logger:        logger,
		HttpServer:    httpServer,
		Postgres:      pg,
		Redis:         redisClient,
		WebhookSender: sender,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("component shutdown started")

	if c.Postgres != nil {
		c.Postgres.Pool.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components stopped",
		slog.Duration("latency", time.Since(start)))
}
