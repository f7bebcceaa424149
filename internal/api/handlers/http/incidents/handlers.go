package incidents

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"guardiant/internal/domain"
	"guardiant/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Incidents interface {
	Create(ctx context.Context, req domain.CreateIncidentRequest) (*domain.Incident, error)
	Update(ctx context.Context, req domain.UpdateIncidentRequest) (*domain.Incident, error)
	Get(ctx context.Context, id string) (*domain.Incident, error)
	List(ctx context.Context, req domain.ListIncidentsRequest) (*domain.ListIncidentsResponse, error)
}

type StatsGetter interface {
	GetStats(ctx context.Context) (*domain.UsageStats, error)
}

type Handler struct {
	logger    *slog.Logger
	Incidents Incidents
	Stats     StatsGetter
}

func NewHandler(logger *slog.Logger, incidents Incidents, stats StatsGetter) *Handler {
	return &Handler{
		logger:    logger,
		Incidents: incidents,
		Stats:     stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// IncidentDispatch is the action-dispatched entry point: one POST endpoint,
// the "action" field picks the operation. The body is read once and decoded
// twice, once for the discriminator and once for the operation's own fields.
func (h *Handler) IncidentDispatch(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		l.Warn("failed to read body", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	var envelope struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	switch envelope.Action {
	case "create":
		h.create(w, r, body)
	case "update":
		h.update(w, r, body)
	case "get":
		h.get(w, r, body)
	case "list":
		h.list(w, r, body)
	default:
		l.Warn("unknown incident action", slog.String("action", envelope.Action))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Unknown action"})
	}
}

// IncidentQuery is the GET alias: ?id= reads one record, anything else lists.
func (h *Handler) IncidentQuery(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	q := r.URL.Query()
	if id := q.Get("id"); id != "" {
		incident, err := h.Incidents.Get(r.Context(), id)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		h.writeSuccess(w, http.StatusOK, incident)
		return
	}

	req := domain.ListIncidentsRequest{
		UserID: q.Get("userId"),
		Limit:  parseInt(q.Get("limit"), 0),
		Offset: parseInt(q.Get("offset"), 0),
	}

	res, err := h.Incidents.List(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("incidents listed", slog.Int("count", len(res.Incidents)), slog.Int64("total", res.Total))
	h.writeSuccess(w, http.StatusOK, res)
}

// UsageStats serves aggregate counters for the dashboard.
func (h *Handler) UsageStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.GetStats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeSuccess(w, http.StatusOK, stats)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request, body []byte) {
	l := h.log(r)

	var req domain.CreateIncidentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	incident, err := h.Incidents.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incident created",
		slog.String("id", incident.IncidentID),
		slog.String("user_id", incident.UserID),
	)

	h.writeSuccess(w, http.StatusCreated, domain.CreateIncidentResponse{
		IncidentID: incident.IncidentID,
		Timestamp:  incident.Timestamp.UTC().Format(time.RFC3339),
		Status:     incident.Status,
	})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, body []byte) {
	l := h.log(r)

	var req domain.UpdateIncidentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("invalid update request", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "incidentId is required"})
		return
	}

	incident, err := h.Incidents.Update(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, domain.UpdateIncidentResponse{
		IncidentID: incident.IncidentID,
		Status:     incident.Status,
		UpdatedAt:  time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request, body []byte) {
	l := h.log(r)

	var req struct {
		IncidentID string `json:"incidentId"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	incident, err := h.Incidents.Get(r.Context(), req.IncidentID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, incident)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, body []byte) {
	l := h.log(r)

	var req domain.ListIncidentsRequest
	if err := json.Unmarshal(body, &req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	res, err := h.Incidents.List(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeSuccess(w, http.StatusOK, res)
}
