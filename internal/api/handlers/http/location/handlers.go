package location

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"guardiant/internal/domain"
	"guardiant/pkg/e"
	"guardiant/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type JurisdictionResolver interface {
	Resolve(ctx context.Context, req domain.JurisdictionQuery) (*domain.JurisdictionResult, error)
}

type Handler struct {
	logger   *slog.Logger
	Resolver JurisdictionResolver
}

func NewHandler(logger *slog.Logger, resolver JurisdictionResolver) *Handler {
	return &Handler{logger: logger, Resolver: resolver}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// Resolve classifies a coordinate pair into a named jurisdiction. Both
// coordinates are required; absence of either is a client error, never a
// silent "Unknown".
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.JurisdictionQuery
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(req); err != nil {
		l.Warn("invalid location query", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "latitude and longitude are required"})
		return
	}

	result, err := h.Resolver.Resolve(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("location resolved",
		slog.Float64("lat", *req.Latitude),
		slog.Float64("lng", *req.Longitude),
		slog.String("state", result.State),
	)

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    result,
	})
}

// Usage describes the endpoint for GET callers poking at the API.
func (h *Handler) Usage(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"endpoint": "/api/v1/location",
		"method":   "POST",
		"body":     map[string]string{"latitude": "number", "longitude": "number"},
		"returns":  "state and city resolved from coordinates",
	})
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	switch {
	case errors.Is(err, e.ErrMissingField), errors.Is(err, e.ErrInvalidRequest):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "latitude and longitude are required"})
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
