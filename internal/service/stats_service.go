package service

import (
	"context"

	"guardiant/internal/domain"
)

type statsService struct {
	repo     StatsRepository
	registry RightsRegistry
}

func NewStatsService(repo StatsRepository, registry RightsRegistry) StatsService {
	return &statsService{repo: repo, registry: registry}
}

func (s *statsService) GetStats(ctx context.Context) (*domain.UsageStats, error) {
	total, shared, err := s.repo.Counts(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.UsageStats{
		TotalIncidents:   total,
		SharedIncidents:  shared,
		StatesSupported:  s.registry.StatesSupported(),
		ScriptsAvailable: s.registry.ScriptCount(),
	}, nil
}
