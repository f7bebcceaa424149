package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"guardiant/internal/domain"
	"guardiant/internal/metrics"
	"guardiant/pkg/e"
)

type jurisdictionService struct {
	resolver JurisdictionResolver
	logger   *slog.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

func NewJurisdictionService(resolver JurisdictionResolver, logger *slog.Logger, m *metrics.Metrics) JurisdictionService {
	return &jurisdictionService{
		resolver: resolver,
		logger:   logger,
		metrics:  m,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *jurisdictionService) Resolve(ctx context.Context, req domain.JurisdictionQuery) (*domain.JurisdictionResult, error) {
	const op = "service.Jurisdiction.Resolve"

	if req.Latitude == nil || req.Longitude == nil {
		return nil, fmt.Errorf("%s: latitude and longitude are required: %w", op, e.ErrMissingField)
	}

	lat, lng := *req.Latitude, *req.Longitude
	state, city := s.resolver.Resolve(lat, lng)

	if s.metrics != nil {
		s.metrics.LocationResolves.WithLabelValues(state).Inc()
	}
	s.logger.Debug("jurisdiction resolved",
		slog.Float64("lat", lat),
		slog.Float64("lng", lng),
		slog.String("state", state),
	)

	return &domain.JurisdictionResult{
		Latitude:  lat,
		Longitude: lng,
		State:     state,
		City:      city,
		Accuracy:  "approximate",
		Timestamp: s.now().Format(time.RFC3339),
	}, nil
}
