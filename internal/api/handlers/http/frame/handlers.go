package frame

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"guardiant/internal/domain"
	"guardiant/internal/metrics"
	"guardiant/internal/render"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go

// Router is the interaction state router boundary.
type Router interface {
	Route(current domain.Action, buttonIndex int) (domain.Action, string)
	Describe(action domain.Action) domain.FramePayload
	DescribeFallback() domain.FramePayload
	ImageURL(action domain.Action, state, message string) string
}

// ImageRenderer draws a render spec into a displayable asset.
type ImageRenderer interface {
	Render(spec render.RenderSpec) ([]byte, error)
}

// RenderCache is the redis-backed image cache boundary. Nil-safe: a
// deployment without redis passes nil and every render is computed fresh.
type RenderCache interface {
	Get(ctx context.Context, action, state, message string) ([]byte, error)
	Set(ctx context.Context, action, state, message string, image []byte) error
}

type Handler struct {
	logger   *slog.Logger
	router   Router
	renderer ImageRenderer
	cache    RenderCache
	metrics  *metrics.Metrics
}

func NewHandler(logger *slog.Logger, router Router, renderer ImageRenderer, cache RenderCache, m *metrics.Metrics) *Handler {
	return &Handler{
		logger:   logger,
		router:   router,
		renderer: renderer,
		cache:    cache,
		metrics:  m,
	}
}

// FrameGet serves the frame payload for a screen. The payload is a function
// of the action query parameter alone.
func (h *Handler) FrameGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	raw := r.URL.Query().Get("action")
	if raw == "" {
		raw = string(domain.ActionHome)
	}

	action, known := domain.ParseAction(raw)
	if !known {
		l.Warn("unknown frame action", slog.String("action", raw))
		h.countFrame("unknown")
		h.writeJSON(w, http.StatusOK, h.router.DescribeFallback())
		return
	}

	h.countFrame(string(action))
	h.writeJSON(w, http.StatusOK, h.router.Describe(action))
}

// FramePost handles a button press: the current screen comes back in the
// untrusted state field, the button index picks the transition. trustedData
// is not verified here; a signature check belongs in front of this handler
// before buttonIndex is used for anything privileged.
func (h *Handler) FramePost(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.FrameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid frame request", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid frame request"})
		return
	}

	buttonIndex := req.UntrustedData.ButtonIndex
	if buttonIndex == 0 {
		buttonIndex = 1
	}
	current, _ := domain.ParseAction(req.UntrustedData.State)

	next, message := h.router.Route(current, buttonIndex)
	h.countFrame(string(next))

	l.Info("frame transition",
		slog.String("from", string(current)),
		slog.Int("button", buttonIndex),
		slog.String("to", string(next)),
	)

	payload := h.router.Describe(next)
	if message != "" || req.UntrustedData.InputText != "" {
		image := h.router.ImageURL(next, req.UntrustedData.InputText, message)
		payload["fc:frame:image"] = image
		payload["og:image"] = image
	}

	h.writeJSON(w, http.StatusOK, payload)
}

// FrameImage renders the visual asset for a screen. Deterministic per
// (action, state, message) and cacheable for an hour.
func (h *Handler) FrameImage(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	q := r.URL.Query()
	action := q.Get("action")
	if action == "" {
		action = string(domain.ActionHome)
	}
	state := q.Get("state")
	message := q.Get("message")

	if h.cache != nil {
		if img, err := h.cache.Get(r.Context(), action, state, message); err != nil {
			l.Warn("render cache get failed", slog.String("error", err.Error()))
		} else if img != nil {
			h.writeSVG(w, img)
			return
		}
	}

	spec := render.BuildRenderSpec(domain.Action(action), state, message)
	img, err := h.renderer.Render(spec)
	if err != nil {
		l.Error("render failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(r.Context(), action, state, message, img); err != nil {
			l.Warn("render cache set failed", slog.String("error", err.Error()))
		}
	}

	h.writeSVG(w, img)
}

func (h *Handler) writeSVG(w http.ResponseWriter, img []byte) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img)
}

func (h *Handler) countFrame(action string) {
	if h.metrics != nil {
		h.metrics.FrameRequests.WithLabelValues(action).Inc()
	}
}
