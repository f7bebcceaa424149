package incidents

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"guardiant/pkg/e"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	switch {
	case errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, e.ErrMissingField):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing required field"})
	case errors.Is(err, e.ErrInvalidRequest):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeSuccess(w http.ResponseWriter, code int, data interface{}) {
	h.writeJSON(w, code, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
