package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	frameh "guardiant/internal/api/handlers/http/frame"
	"guardiant/internal/api/handlers/http/incidents"
	"guardiant/internal/api/handlers/http/location"
	"guardiant/internal/api/handlers/http/system"
	"guardiant/internal/config"
	"guardiant/internal/metrics"
	"guardiant/internal/middleware"
	"guardiant/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	svc *service.Service,
	frameRouter frameh.Router,
	renderer frameh.ImageRenderer,
	renderCache frameh.RenderCache,
	m *metrics.Metrics,
) *Server {
	frameHandler := frameh.NewHandler(logger, frameRouter, renderer, renderCache, m)
	incidentsHandler := incidents.NewHandler(logger, svc.IncidentService, svc.StatsService)
	locationHandler := location.NewHandler(logger, svc.JurisdictionService)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(frameHandler, incidentsHandler, locationHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	frameHandler *frameh.Handler,
	incidentsHandler *incidents.Handler,
	locationHandler *location.Handler,
	systemHandler *system.Handler,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// FRAME
		api.Route("/frame", func(fr chi.Router) {
			fr.Use(middleware.Limit(20, 40, 5*time.Minute, logger))

			fr.Get("/", frameHandler.FrameGet)
			fr.Post("/", frameHandler.FramePost)
			fr.Get("/image", frameHandler.FrameImage)
		})

		// INCIDENTS
		api.Route("/incidents", func(ir chi.Router) {
			ir.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			ir.Post("/", incidentsHandler.IncidentDispatch)
			ir.Get("/", incidentsHandler.IncidentQuery)
		})

		// LOCATION
		api.Route("/location", func(lr chi.Router) {
			lr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			lr.Post("/", locationHandler.Resolve)
			lr.Get("/", locationHandler.Usage)
		})

		// SYSTEM
		api.Get("/stats", incidentsHandler.UsageStats)
		api.Get("/health", systemHandler.SystemHealth)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
