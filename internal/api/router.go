// Package api serves admissions and intersections over HTTP with a JSON body.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Borislavv/go-ash-intersect/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const InvocationIDHeader = "X-Invocation-Id"

// Intersector is the part of the facade the front end needs.
type Intersector interface {
	Admit(req model.Request) (model.Outcome, error)
	Run(ctx context.Context, req model.Request) (*model.Report, error)
}

type Gatherer = prometheus.Gatherer

// NewRouter mounts the API. gatherer may be nil, in which case /metrics is not served.
// isShuttingDown may be nil.
func NewRouter(svc Intersector, gatherer Gatherer, logger *slog.Logger, isShuttingDown func() bool) http.Handler {
	if isShuttingDown == nil {
		isShuttingDown = func() bool { return false }
	}
	h := &handlers{svc: svc, logger: logger, shuttingDown: isShuttingDown}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.healthz)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/admissions", h.admit)
		r.Post("/intersections", h.intersect)
	})
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return r
}
