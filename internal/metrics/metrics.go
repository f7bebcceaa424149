package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts the interesting events: frame interactions per screen,
// incident lifecycle operations and jurisdiction lookups.
type Metrics struct {
	FrameRequests    *prometheus.CounterVec
	IncidentsCreated prometheus.Counter
	IncidentsShared  prometheus.Counter
	LocationResolves *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		FrameRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "guardiant_frame_requests_total",
			Help: "Frame payload requests by resolved screen",
		}, []string{"action"}),
		IncidentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "guardiant_incidents_created_total",
			Help: "Total number of incidents created",
		}),
		IncidentsShared: promauto.NewCounter(prometheus.CounterOpts{
			Name: "guardiant_incidents_shared_total",
			Help: "Total number of incidents that reached the shared status",
		}),
		LocationResolves: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "guardiant_location_resolves_total",
			Help: "Jurisdiction resolutions by resolved state",
		}, []string{"state"}),
	}
}
