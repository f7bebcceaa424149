package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"guardiant/internal/domain"
	"guardiant/internal/metrics"
	"guardiant/pkg/e"
)

type incidentService struct {
	repo       IncidentRepository
	resolver   JurisdictionResolver
	registry   RightsRegistry
	shareQueue ShareQueue
	logger     *slog.Logger
	metrics    *metrics.Metrics
	now        func() time.Time
}

func NewIncidentService(
	repo IncidentRepository,
	resolver JurisdictionResolver,
	registry RightsRegistry,
	shareQueue ShareQueue,
	logger *slog.Logger,
	m *metrics.Metrics,
) IncidentService {
	return &incidentService{
		repo:       repo,
		resolver:   resolver,
		registry:   registry,
		shareQueue: shareQueue,
		logger:     logger,
		metrics:    m,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *incidentService) Create(ctx context.Context, req domain.CreateIncidentRequest) (*domain.Incident, error) {
	const op = "service.Incident.Create"

	if req.UserID == "" {
		return nil, fmt.Errorf("%s: userId: %w", op, e.ErrMissingField)
	}

	loc := domain.UnknownLocation()
	if req.Location != nil {
		loc = *req.Location
		if loc.State == "" {
			loc.State, loc.City = s.resolver.Resolve(loc.Latitude, loc.Longitude)
		}
	}

	summary := req.RightsInfoSummary
	if summary == "" && loc.State != "Unknown" {
		// Snapshot the jurisdiction guidance as of creation time.
		summary = s.registry.GuideSummary(loc.State)
	}

	inc := &domain.Incident{
		IncidentID:        uuid.NewString(),
		UserID:            req.UserID,
		Timestamp:         s.now(),
		Location:          loc,
		Notes:             req.Notes,
		RightsInfoSummary: summary,
		Status:            domain.IncidentRecording,
	}

	if err := s.repo.Create(ctx, inc); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncidentsCreated.Inc()
	}
	s.logger.Info("incident created",
		slog.String("incident_id", inc.IncidentID),
		slog.String("user_id", inc.UserID),
		slog.String("state", inc.Location.State),
	)
	return inc, nil
}

// Update merges the provided fields into the stored record. Unspecified
// fields keep their prior value, the creation timestamp is never touched,
// and the status only ever advances: a backward transition is ignored.
func (s *incidentService) Update(ctx context.Context, req domain.UpdateIncidentRequest) (*domain.Incident, error) {
	const op = "service.Incident.Update"

	if req.IncidentID == "" {
		return nil, fmt.Errorf("%s: incidentId: %w", op, e.ErrMissingField)
	}

	inc, err := s.repo.Get(ctx, req.IncidentID)
	if err != nil {
		return nil, err
	}

	if req.Location != nil {
		inc.Location = *req.Location
	}
	if req.Notes != nil {
		inc.Notes = *req.Notes
	}
	if req.RightsInfoSummary != nil {
		inc.RightsInfoSummary = *req.RightsInfoSummary
	}
	if req.RecordingURL != nil {
		inc.RecordingURL = *req.RecordingURL
	}
	if req.Duration != nil {
		inc.Duration = *req.Duration
	}

	becameShared := false
	if req.Status != nil {
		next := *req.Status
		if !next.Valid() {
			return nil, fmt.Errorf("%s: status %q: %w", op, next, e.ErrInvalidRequest)
		}
		switch {
		case inc.Status.CanTransitionTo(next):
			becameShared = next == domain.IncidentShared && inc.Status != domain.IncidentShared
			inc.Status = next
		default:
			s.logger.Warn("ignoring backward status transition",
				slog.String("incident_id", inc.IncidentID),
				slog.String("from", string(inc.Status)),
				slog.String("to", string(next)),
			)
		}
	}

	if err := s.repo.Update(ctx, inc); err != nil {
		return nil, err
	}

	if becameShared {
		if s.metrics != nil {
			s.metrics.IncidentsShared.Inc()
		}
		s.notifyShared(ctx, inc)
	}
	return inc, nil
}

func (s *incidentService) Get(ctx context.Context, id string) (*domain.Incident, error) {
	const op = "service.Incident.Get"

	if id == "" {
		return nil, fmt.Errorf("%s: incidentId: %w", op, e.ErrMissingField)
	}
	return s.repo.Get(ctx, id)
}

func (s *incidentService) List(ctx context.Context, req domain.ListIncidentsRequest) (*domain.ListIncidentsResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	items, total, err := s.repo.List(ctx, req.UserID, limit, offset)
	if err != nil {
		return nil, err
	}

	return &domain.ListIncidentsResponse{
		Incidents: items,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}, nil
}

func (s *incidentService) notifyShared(ctx context.Context, inc *domain.Incident) {
	if s.shareQueue == nil {
		return
	}
	payload := domain.ShareNotification{
		IncidentID: inc.IncidentID,
		UserID:     inc.UserID,
		Summary:    inc.RightsInfoSummary,
		SharedAt:   s.now().Format(time.RFC3339),
	}
	if err := s.shareQueue.Enqueue(ctx, payload); err != nil {
		// Share delivery is best effort; the status change already landed.
		s.logger.Error("enqueue share notification failed",
			slog.String("incident_id", inc.IncidentID),
			slog.Any("error", err),
		)
		return
	}
	s.logger.Info("share notification enqueued", slog.String("incident_id", inc.IncidentID))
}
