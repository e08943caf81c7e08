package app

import (
	"net/http"

	"github.com/fantakl/votes-admin/app/observability"
	"github.com/fantakl/votes-admin/pkg/attr"
	"github.com/fantakl/votes-admin/pkg/httpx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter mounts every module under /api behind the auth module's guards.
func NewRouter(obs observability.Observability, modules Modules) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(correlationID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if obs.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(obs.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		if modules.Auth != nil {
			r.Use(modules.Auth.Middlewares()...)
		}
		modules.Scoring.RegisterRoutes(r)
		modules.Roster.RegisterRoutes(r)
		modules.Vote.RegisterRoutes(r)
		modules.Results.RegisterRoutes(r)
		modules.Report.RegisterRoutes(r)
	})

	return r
}

// correlationID copies the chi request id into the context so that logs and
// published events carry it.
func correlationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := middleware.GetReqID(r.Context())
		if id == "" {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set(middleware.RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(attr.WithCorrelationID(r.Context(), id)))
	})
}
