package service

import (
	"context"

	"guardiant/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// IncidentService is the incident lifecycle boundary: create, update, get,
// list. All inputs are validated before any mutation.
type IncidentService interface {
	Create(ctx context.Context, req domain.CreateIncidentRequest) (*domain.Incident, error)
	Update(ctx context.Context, req domain.UpdateIncidentRequest) (*domain.Incident, error)
	Get(ctx context.Context, id string) (*domain.Incident, error)
	List(ctx context.Context, req domain.ListIncidentsRequest) (*domain.ListIncidentsResponse, error)
}

// IncidentRepository is the four-operation storage contract. The in-memory
// and postgres stores both satisfy it; merge and status rules live above it
// in the service so every backend behaves the same.
type IncidentRepository interface {
	Create(ctx context.Context, incident *domain.Incident) error
	Update(ctx context.Context, incident *domain.Incident) error
	Get(ctx context.Context, id string) (*domain.Incident, error)
	List(ctx context.Context, userID string, limit, offset int) ([]*domain.Incident, int64, error)
}

type StatsRepository interface {
	Counts(ctx context.Context) (total, shared int64, err error)
}

// JurisdictionResolver classifies coordinates into a named region.
type JurisdictionResolver interface {
	Resolve(lat, lng float64) (state, city string)
}

// RightsRegistry is the slice of the content registry the services need.
type RightsRegistry interface {
	GuideSummary(state string) string
	StatesSupported() int
	ScriptCount() int
}

// ShareQueue receives a notification whenever an incident reaches the shared
// status. May be nil-backed in deployments without redis.
type ShareQueue interface {
	Enqueue(ctx context.Context, payload domain.ShareNotification) error
}

type JurisdictionService interface {
	Resolve(ctx context.Context, req domain.JurisdictionQuery) (*domain.JurisdictionResult, error)
}

type StatsService interface {
	GetStats(ctx context.Context) (*domain.UsageStats, error)
}

type Service struct {
	IncidentService     IncidentService
	JurisdictionService JurisdictionService
	StatsService        StatsService
}

func NewService(
	incidentService IncidentService,
	jurisdictionService JurisdictionService,
	statsService StatsService,
) *Service {
	return &Service{
		IncidentService:     incidentService,
		JurisdictionService: jurisdictionService,
		StatsService:        statsService,
	}
}
