package domain

type CreateIncidentRequest struct {
	UserID            string    `json:"userId" validate:"required"`
	Location          *Location `json:"location" validate:"omitempty"`
	Notes             string    `json:"notes"`
	RightsInfoSummary string    `json:"rightsInfoSummary"`
}

type CreateIncidentResponse struct {
	IncidentID string         `json:"incidentId"`
	Timestamp  string         `json:"timestamp"`
	Status     IncidentStatus `json:"status"`
}

// UpdateIncidentRequest carries merge semantics: nil fields keep the stored
// value. Timestamp is deliberately absent, it is immutable after create.
type UpdateIncidentRequest struct {
	IncidentID        string          `json:"incidentId" validate:"required"`
	Location          *Location       `json:"location"`
	Notes             *string         `json:"notes"`
	RightsInfoSummary *string         `json:"rightsInfoSummary"`
	RecordingURL      *string         `json:"recordingUrl"`
	Duration          *int            `json:"duration"`
	Status            *IncidentStatus `json:"status" validate:"omitempty,oneof=recording completed shared"`
}

type UpdateIncidentResponse struct {
	IncidentID string         `json:"incidentId"`
	Status     IncidentStatus `json:"status"`
	UpdatedAt  string         `json:"updatedAt"`
}

type ListIncidentsRequest struct {
	UserID string `json:"userId"`
	Limit  int    `json:"limit" validate:"omitempty,min=1,max=100"`
	Offset int    `json:"offset" validate:"omitempty,min=0"`
}

type ListIncidentsResponse struct {
	Incidents []*Incident `json:"incidents"`
	Total     int64       `json:"total"`
	Limit     int         `json:"limit"`
	Offset    int         `json:"offset"`
}
