package domain

import (
	"time"
)

type IncidentStatus string

const (
	IncidentRecording IncidentStatus = "recording"
	IncidentCompleted IncidentStatus = "completed"
	IncidentShared    IncidentStatus = "shared"
)

// statusRank orders the lifecycle. An incident never moves backward.
var statusRank = map[IncidentStatus]int{
	IncidentRecording: 0,
	IncidentCompleted: 1,
	IncidentShared:    2,
}

func (s IncidentStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo reports whether next is the same or a later lifecycle
// stage. Repeating the current status is allowed (idempotent updates).
func (s IncidentStatus) CanTransitionTo(next IncidentStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to >= from
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	State     string  `json:"state"`
	City      string  `json:"city,omitempty"`
}

// UnknownLocation is the default when create omits a location.
func UnknownLocation() Location {
	return Location{Latitude: 0, Longitude: 0, State: "Unknown"}
}

type Incident struct {
	IncidentID string `json:"incidentId"`
	UserID     string `json:"userId"`
	// Timestamp is set once at creation and never changes afterwards.
	Timestamp         time.Time      `json:"timestamp"`
	Location          Location       `json:"location"`
	Notes             string         `json:"notes"`
	RightsInfoSummary string         `json:"rightsInfoSummary"`
	RecordingURL      string         `json:"recordingUrl,omitempty"`
	Duration          int            `json:"duration,omitempty"`
	Status            IncidentStatus `json:"status"`
}
