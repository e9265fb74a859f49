// Package server exposes the stats card and its summaries over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/naka-gawa/github-stats-card/internal/chart"
	"github.com/naka-gawa/github-stats-card/internal/config"
	"github.com/naka-gawa/github-stats-card/internal/domain"
)

// Renderer produces a fresh chart and summary on every call.
type Renderer interface {
	Render(ctx context.Context, cfg config.Config, now time.Time) (*chart.Document, *domain.Summary, error)
}

// Handler serves the chart endpoints.
type Handler struct {
	renderer Renderer
	cfg      config.Config
	logger   *log.Logger
	now      func() time.Time
}

// NewHandler creates a Handler.
func NewHandler(renderer Renderer, cfg config.Config, logger *log.Logger) *Handler {
	return &Handler{renderer: renderer, cfg: cfg, logger: logger, now: time.Now}
}

// Router wires every route.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.requestLogger)

	r.Get("/", h.chart)
	r.Get("/stats.svg", h.chart)
	r.Get("/api/langs", h.languages)
	r.Get("/api/active_projects", h.activity)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request) (*chart.Document, *domain.Summary, bool) {
	doc, summary, err := h.renderer.Render(r.Context(), h.cfg, h.now())
	if err != nil {
		h.logger.Error("failed to render stats", "err", err)
		writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
		return nil, nil, false
	}
	return doc, summary, true
}

// statusFor maps a render failure to a response code. Anything that is not a
// data or rules failure came from the upstream fetch.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMalformedRecord),
		errors.Is(err, domain.ErrZeroTotal),
		errors.Is(err, domain.ErrInvalidConfig):
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}

func (h *Handler) chart(w http.ResponseWriter, r *http.Request) {
	doc, _, ok := h.render(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Bytes())
}

func (h *Handler) languages(w http.ResponseWriter, r *http.Request) {
	_, summary, ok := h.render(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, summary.Languages)
}

func (h *Handler) activity(w http.ResponseWriter, r *http.Request) {
	_, summary, ok := h.render(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Window   domain.Window          `json:"window"`
		Activity domain.ActivitySummary `json:"activity"`
	}{summary.Window, summary.Activity})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
